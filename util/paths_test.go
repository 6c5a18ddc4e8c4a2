// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/bitmark-inc/prospectord/util"
)

func TestEnsureAbsolute(t *testing.T) {

	testData := []struct {
		directory string
		file      string
		expected  string
	}{
		{"/var/lib/prospectord", "prospectord.conf", "/var/lib/prospectord/prospectord.conf"},
		{"/var/lib/prospectord", "/etc/prospectord.conf", "/etc/prospectord.conf"},
		{"/var/lib/prospectord", "log/../run/x.pid", "/var/lib/prospectord/run/x.pid"},
		{"/var/lib", "", "/var/lib"},
	}

	for i, d := range testData {
		actual := util.EnsureAbsolute(d.directory, d.file)
		if actual != d.expected {
			t.Errorf("%d: EnsureAbsolute(%q, %q) = %q  expected: %q",
				i, d.directory, d.file, actual, d.expected)
		}
	}
}

func TestEnsureFileExists(t *testing.T) {
	if !util.EnsureFileExists("paths.go") {
		t.Errorf("missing: %q", "paths.go")
	}
	if util.EnsureFileExists("no-such-file") {
		t.Errorf("unexpected: %q", "no-such-file")
	}
}
