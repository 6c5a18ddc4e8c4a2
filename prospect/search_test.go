// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prospect_test

import (
	"encoding/binary"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/prospectord/hasher"
	"github.com/bitmark-inc/prospectord/hasher/sha3d"
	"github.com/bitmark-inc/prospectord/prospect"
)

// deterministic backend: difficulty is a pure function of the nonce,
// the digest encodes the nonce so results can be checked exactly
type stubHasher struct {
	difficulty func(nonce uint64) (uint32, bool)
}

type stubScratch struct {
	calls int
}

func (s *stubHasher) Name() string {
	return "stub"
}

func (s *stubHasher) NewScratch() (hasher.Scratch, error) {
	return new(stubScratch), nil
}

func (s *stubHasher) Hash(scratch hasher.Scratch, challenge hasher.Challenge, nonce uint64) (hasher.Outcome, bool) {
	scratch.(*stubScratch).calls += 1

	d, ok := s.difficulty(nonce)
	if !ok {
		return hasher.Outcome{}, false
	}
	var digest hasher.Digest
	binary.LittleEndian.PutUint64(digest[:], nonce)
	return hasher.Outcome{Digest: digest, Difficulty: d}, true
}

func stubDigest(nonce uint64) hasher.Digest {
	var digest hasher.Digest
	binary.LittleEndian.PutUint64(digest[:], nonce)
	return digest
}

// zero budget and zero floor stop at the very first checkpoint
func TestSearchStopsImmediately(t *testing.T) {

	h := &stubHasher{
		difficulty: func(nonce uint64) (uint32, bool) { return 0, true },
	}

	start := time.Now()
	result := prospect.Search(h, hasher.Challenge{}, prospect.Config{
		Workers:       1,
		Cutoff:        0,
		MinDifficulty: 0,
	})
	elapsed := time.Since(start)

	if (prospect.Result{}) != result {
		t.Errorf("result: %+v  expected the zero sentinel", result)
	}
	if elapsed > time.Second {
		t.Errorf("search took %s, expected prompt stop", elapsed)
	}
}

// a backend that never yields a result still terminates once the
// budget is spent, returning the sentinel
func TestSearchAllMisses(t *testing.T) {

	h := &stubHasher{
		difficulty: func(nonce uint64) (uint32, bool) { return 0, false },
	}

	start := time.Now()
	result := prospect.Search(h, hasher.Challenge{}, prospect.Config{
		Workers:       2,
		Cutoff:        time.Second,
		MinDifficulty: 0,
	})
	elapsed := time.Since(start)

	if (prospect.Result{}) != result {
		t.Errorf("result: %+v  expected the zero sentinel", result)
	}
	if elapsed < time.Second {
		t.Errorf("search took %s, expected at least the 1s budget", elapsed)
	}
}

// the floor holds the search open until some worker reaches it, and
// the best candidate wins across workers
func TestSearchFloorAndBest(t *testing.T) {

	lowNonce := uint64(3)
	highNonce := prospect.FirstNonce(2, 1) + 5

	h := &stubHasher{
		difficulty: func(nonce uint64) (uint32, bool) {
			switch nonce {
			case lowNonce:
				return 5, true
			case highNonce:
				return 9, true
			default:
				return 0, true
			}
		},
	}

	result := prospect.Search(h, hasher.Challenge{}, prospect.Config{
		Workers:       2,
		Cutoff:        0,
		MinDifficulty: 9,
	})

	if highNonce != result.Nonce || 9 != result.Difficulty {
		t.Fatalf("result: %+v  expected nonce %d difficulty 9", result, highNonce)
	}
	if stubDigest(highNonce) != result.Digest {
		t.Errorf("digest: %s  expected: %s", result.Digest, stubDigest(highNonce))
	}
}

// a crashing worker is contained, the siblings still deliver
func TestSearchWorkerCrash(t *testing.T) {

	crashAbove := prospect.FirstNonce(2, 1)

	h := &stubHasher{
		difficulty: func(nonce uint64) (uint32, bool) {
			if nonce >= crashAbove {
				panic("scratch corrupted")
			}
			if 1 == nonce {
				return 7, true
			}
			return 0, true
		},
	}

	result := prospect.Search(h, hasher.Challenge{}, prospect.Config{
		Workers:       2,
		Cutoff:        0,
		MinDifficulty: 7,
	})

	if 1 != result.Nonce || 7 != result.Difficulty {
		t.Errorf("result: %+v  expected nonce 1 difficulty 7", result)
	}
}

// worker 0 reports progress through the sink, nobody else does
func TestSearchStatus(t *testing.T) {

	h := &stubHasher{
		difficulty: func(nonce uint64) (uint32, bool) { return 0, true },
	}

	lines := []string{}
	result := prospect.Search(h, hasher.Challenge{}, prospect.Config{
		Workers:       2,
		Cutoff:        2 * time.Second,
		MinDifficulty: 0,
		Status: func(line string) {
			lines = append(lines, line)
		},
	})

	if (prospect.Result{}) != result {
		t.Errorf("result: %+v  expected the zero sentinel", result)
	}
	if 0 == len(lines) {
		t.Fatalf("no status lines received")
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "Mining... (difficulty 0") {
			t.Errorf("%d: unexpected status line: %q", i, line)
		}
	}
	// the earliest line shows the remaining budget
	if !strings.Contains(lines[0], ", time 0") {
		t.Errorf("first status line has no remaining time: %q", lines[0])
	}
}

// spec'd end to end shape: all-zero challenge through a real backend
func TestSearchZeroChallenge(t *testing.T) {

	h := sha3d.New()

	start := time.Now()
	result := prospect.Search(h, hasher.Challenge{}, prospect.Config{
		Workers:       1,
		Cutoff:        0,
		MinDifficulty: 0,
	})
	elapsed := time.Since(start)

	if elapsed > time.Second {
		t.Errorf("search took %s, expected prompt stop", elapsed)
	}

	// only nonce 0 can have been scanned before the first checkpoint
	input := make([]byte, hasher.ChallengeLength+hasher.NonceLength)
	expected := hasher.Digest(sha3.Sum256(input))
	if d := hasher.Difficulty(expected); d > 0 {
		if result.Difficulty != d || result.Digest != expected || 0 != result.Nonce {
			t.Errorf("result: %+v  expected nonce 0 difficulty %d", result, d)
		}
	} else if (prospect.Result{}) != result {
		t.Errorf("result: %+v  expected the zero sentinel", result)
	}
}

// fixed duration run: all workers report into one histogram
func TestBenchmark(t *testing.T) {

	h := &stubHasher{
		difficulty: func(nonce uint64) (uint32, bool) { return uint32(nonce % 4), true },
	}

	lines := []string{}
	start := time.Now()
	report := prospect.Benchmark(h, hasher.Challenge{}, prospect.Config{
		Workers:  2,
		Duration: 200 * time.Millisecond,
		Status: func(line string) {
			lines = append(lines, line)
		},
	})
	elapsed := time.Since(start)

	if elapsed < 200*time.Millisecond {
		t.Errorf("benchmark took %s, expected at least the 200ms duration", elapsed)
	}

	if 0 == report.Total {
		t.Fatalf("no hashes recorded")
	}
	sum := uint64(0)
	for _, count := range report.Buckets {
		sum += count
	}
	if report.Total != sum {
		t.Errorf("bucket sum: %d  total: %d", sum, report.Total)
	}
	if 4 != len(report.Buckets) {
		t.Errorf("buckets: %d  expected: 4", len(report.Buckets))
	}

	// under one whole second the average reports zero
	if 0 != report.AveragePerSecond {
		t.Errorf("average: %d  expected: 0", report.AveragePerSecond)
	}

	if 0 == len(lines) {
		t.Fatalf("no report lines received")
	}
	if !strings.HasPrefix(lines[0], "0s – Avg Hashes/Sec: ") {
		t.Errorf("unexpected report line: %q", lines[0])
	}
}

func TestBenchmarkDefaultDuration(t *testing.T) {
	if 55*time.Second != prospect.DefaultBenchmarkDuration {
		t.Errorf("default duration: %s  expected: 55s", prospect.DefaultBenchmarkDuration)
	}
}
