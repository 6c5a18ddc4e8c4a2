// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "prospect-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "seek",
			Usage:     "search for the best nonce of one challenge",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "workers, w",
					Value: 1,
					Usage: " number of parallel workers `COUNT`",
				},
				cli.IntFlag{
					Name:  "cutoff, t",
					Value: 10,
					Usage: " time budget `SECONDS`",
				},
				cli.Uint64Flag{
					Name:  "minimum, m",
					Value: 0,
					Usage: " keep going past the budget until this difficulty `NUMBER`",
				},
				cli.StringFlag{
					Name:  "algorithm, a",
					Value: "",
					Usage: " hashing backend `NAME` [argon2d|sha3] default argon2d",
				},
				cli.StringFlag{
					Name:  "challenge, c",
					Value: "",
					Usage: " 32 byte hex `CHALLENGE` default random",
				},
			},
			Action: runSeek,
		},
		{
			Name:      "rate",
			Usage:     "benchmark a hashing backend",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "workers, w",
					Value: 1,
					Usage: " number of parallel workers `COUNT`",
				},
				cli.IntFlag{
					Name:  "time, t",
					Value: 55,
					Usage: " run time `SECONDS`",
				},
				cli.StringFlag{
					Name:  "algorithm, a",
					Value: "",
					Usage: " hashing backend `NAME` [argon2d|sha3] default sha3",
				},
				cli.StringFlag{
					Name:  "challenge, c",
					Value: "",
					Usage: " 32 byte hex `CHALLENGE` default random",
				},
			},
			Action: runRate,
		},
		{
			Name:      "verify",
			Usage:     "recompute the digest of one challenge and nonce",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "algorithm, a",
					Value: "",
					Usage: " hashing backend `NAME` [argon2d|sha3] default argon2d",
				},
				cli.StringFlag{
					Name:  "challenge, c",
					Value: "",
					Usage: "*32 byte hex `CHALLENGE`",
				},
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "",
					Usage: "*nonce `NUMBER` decimal or 0x hex",
				},
				cli.StringFlag{
					Name:  "digest, d",
					Value: "",
					Usage: " expected Base58 `DIGEST` to compare",
				},
			},
			Action: runVerify,
		},
		{
			Name:  "version",
			Usage: "display prospect-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
