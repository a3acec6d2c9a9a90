// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"

	"github.com/ethereum/go-ethereum/crypto/blake2b"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/liquidstake/pool/programs/stakepool"
	"github.com/liquidstake/pool/solana"
)

// config describes a pool and the activity to run against it.
// Accounts are referred to by name, see keyOf.
type config struct {
	Rent     solana.Rent       `yaml:"rent"`
	Epoch    uint64            `yaml:"epoch"`
	Airdrops map[string]uint64 `yaml:"airdrops"`
	Pool     poolConfig        `yaml:"pool"`
	Deposits []depositConfig   `yaml:"deposits"`
}

type poolConfig struct {
	ProgramID      solana.Pubkey       `yaml:"program-id"`
	Account        string              `yaml:"account"`
	Manager        string              `yaml:"manager"`
	Decimals       uint8               `yaml:"decimals"`
	FeePolicy      stakepool.FeePolicy `yaml:"fee-policy"`
	MaxValidators  uint32              `yaml:"max-validators"`
	MaxMaintainers uint32              `yaml:"max-maintainers"`
	Validators     []validatorConfig   `yaml:"validators"`
	Maintainers    []string            `yaml:"maintainers"`
}

type validatorConfig struct {
	Name       string `yaml:"name"`
	Commission uint8  `yaml:"commission"`
}

type depositConfig struct {
	From   string `yaml:"from"`
	Amount uint64 `yaml:"amount"`
}

func defaultConfig() *config {
	return &config{
		Rent: solana.DefaultRent(),
		Pool: poolConfig{
			ProgramID: stakepool.DefaultProgramID,
			Account:   "pool",
			Manager:   "manager",
			Decimals:  9,
		},
	}
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if cfg.Pool.Account == "" || cfg.Pool.Manager == "" {
		return nil, errors.New("config: pool account and manager must be named")
	}
	for _, v := range cfg.Pool.Validators {
		if v.Name == "" {
			return nil, errors.New("config: validator without name")
		}
	}
	for i, d := range cfg.Deposits {
		if d.From == "" {
			return nil, errors.Errorf("config: deposit %d has no depositor", i)
		}
	}
	return cfg, nil
}

// keyOf resolves an account name. A base58 public key stands for itself, any
// other name maps to a fixed key derived from it.
func keyOf(name string) solana.Pubkey {
	if key, err := solana.PubkeyFromBase58(name); err == nil {
		return key
	}
	return solana.Pubkey(blake2b.Sum256([]byte("poold:" + name)))
}
