// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/vechain/detshuffle/entropy"
	"github.com/vechain/detshuffle/log"
	"github.com/vechain/detshuffle/metrics"
	"github.com/vechain/detshuffle/shuffle"
	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	version   string
	gitCommit string
	gitTag    string
	logger    = log.WithContext("pkg", "main")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = fullVersion()
	app.Name = "detshuffle"
	app.Usage = "Deterministic shuffle of 1..N from VRF entropy, matching the on-chain verifier"
	app.ArgsUsage = "[ENTROPY...]"
	app.Copyright = "2026 VeChain Foundation <https://vechain.org/>"
	app.Flags = []cli.Flag{
		entropyFlag,
		sizeFlag,
		itemsFlag,
		configFlag,
		traceFlag,
		metricsFlag,
		verbosityFlag,
		jsonLogsFlag,
	}
	app.Action = defaultAction
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(ctx *cli.Context) {
	fd := os.Stderr.Fd()
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	log.SetHandler(log.NewHandler(os.Stderr, ctx.Int(verbosityFlag.Name), ctx.Bool(jsonLogsFlag.Name), color))
}

func newShuffler(seed entropy.Entropy, trace bool) *shuffle.Shuffler {
	if !trace {
		return shuffle.New()
	}
	return shuffle.New(shuffle.WithTracer(func(step shuffle.Step) {
		logger.Info("swap",
			"entropy", seed.AbbrevString(),
			"i", step.Iteration,
			"random", step.Random.Hex(),
			"lastItem", step.LastItem,
			"selected", step.Selected,
		)
	}))
}

func defaultAction(ctx *cli.Context) error {
	initLogger(ctx)
	// meters bind to the provider on first use, so switch before any shuffle
	if ctx.Bool(metricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var (
		trace = ctx.Bool(traceFlag.Name)
		lines = make([]string, len(cfg.Entropy))
		g     errgroup.Group
	)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, seed := range cfg.Entropy {
		g.Go(func() error {
			s := newShuffler(seed, trace)
			if len(cfg.Items) > 0 {
				items, err := shuffle.PermuteWith(s, seed, cfg.Items)
				if err != nil {
					return err
				}
				lines[i] = strings.Join(items, ",")
				return nil
			}
			perm, err := s.Shuffle(seed, *cfg.Size)
			if err != nil {
				return err
			}
			lines[i] = formatPerm(perm)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, seed := range cfg.Entropy {
		fmt.Fprintln(ctx.App.Writer, seed, lines[i])
	}
	logger.Debug("done", "count", len(cfg.Entropy), "size", *cfg.Size)

	if ctx.Bool(metricsFlag.Name) {
		return metrics.WriteText(ctx.App.Writer)
	}
	return nil
}

func formatPerm(perm []int) string {
	var b strings.Builder
	for i, v := range perm {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
