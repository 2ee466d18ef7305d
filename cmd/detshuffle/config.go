// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vechain/detshuffle/entropy"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"
)

type config struct {
	Entropy []entropy.Entropy `yaml:"entropy"`
	Size    *int              `yaml:"size"`
	Items   []string          `yaml:"items"`
}

func loadConfigFile(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "read config")
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WithMessagef(err, "decode config %s", path)
	}
	return &cfg, nil
}

// loadConfig merges the config file with flags and arguments. Flags win over
// the file; entropies from flags and arguments replace those from the file.
func loadConfig(ctx *cli.Context) (*config, error) {
	cfg := &config{}
	if path := ctx.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = loadConfigFile(path); err != nil {
			return nil, err
		}
	}

	var inputs []string
	inputs = append(inputs, ctx.StringSlice(entropyFlag.Name)...)
	inputs = append(inputs, ctx.Args()...)
	if len(inputs) > 0 {
		cfg.Entropy = cfg.Entropy[:0]
		for _, in := range inputs {
			e, err := entropy.Parse(in)
			if err != nil {
				return nil, errors.WithMessagef(err, "entropy %q", in)
			}
			cfg.Entropy = append(cfg.Entropy, e)
		}
	}
	if ctx.IsSet(sizeFlag.Name) {
		size := ctx.Int(sizeFlag.Name)
		cfg.Size = &size
	}
	if ctx.IsSet(itemsFlag.Name) {
		cfg.Items = strings.Split(ctx.String(itemsFlag.Name), ",")
	}

	if len(cfg.Entropy) == 0 {
		return nil, errors.New("no entropy given")
	}
	if len(cfg.Items) > 0 {
		if cfg.Size == nil {
			size := len(cfg.Items)
			cfg.Size = &size
		} else if *cfg.Size != len(cfg.Items) {
			return nil, errors.Errorf("size %d does not match %d items", *cfg.Size, len(cfg.Items))
		}
	}
	if cfg.Size == nil {
		return nil, errors.New("size is required")
	}
	return cfg, nil
}
