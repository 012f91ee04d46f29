package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Ledger   Ledger
	HTTP     HTTP
	Postgres Postgres
	Bot      Bot
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"charity-token"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Ledger struct {
	// AdminAccount is the single identity allowed to mint, curate the
	// catalog and manage orders. Fixed for the process lifetime.
	AdminAccount string `env:"ADMIN_ACCOUNT,required,notEmpty"`

	// BasisRate is the initial divisor converting received currency units
	// to tokens. Zero is accepted here; minting fails on it.
	BasisRate uint64 `env:"BASIS_RATE,required"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
