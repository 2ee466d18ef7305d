// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"github.com/vechain/detshuffle/log"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	entropyFlag = cli.StringSliceFlag{
		Name:  "entropy",
		Usage: "256-bit entropy, 0x-prefixed hex or decimal (repeatable)",
	}
	sizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "number of items to shuffle",
	}
	itemsFlag = cli.StringFlag{
		Name:  "items",
		Usage: "comma separated items to permute instead of printing indices",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a YAML file providing entropy, size and items",
	}
	traceFlag = cli.BoolFlag{
		Name:  "trace",
		Usage: "log every swap",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: log.DefaultVerbosity,
		Usage: "log verbosity (0-5)",
	}
	metricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "enable metrics collection and print them after the results",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "json-logs",
		Usage: "output logs in JSON format",
	}
)
