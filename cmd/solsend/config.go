package main

import (
	"time"

	"github.com/gabapcia/solsend/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "solsend"

type config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"required,oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"solsend" validate:"required"`

	RPCEndpoint   string        `envconfig:"RPC_ENDPOINT" default:"https://api.devnet.solana.com" validate:"required,url"`
	RPCTimeout    time.Duration `envconfig:"RPC_TIMEOUT" default:"10s" validate:"gt=0"`
	RPCCommitment string        `envconfig:"RPC_COMMITMENT" default:"finalized" validate:"oneof=processed confirmed finalized"`

	WalletAPIURL     string        `envconfig:"WALLET_API_URL" default:"https://api.metakeep.xyz" validate:"required,url"`
	WalletAPIKey     string        `envconfig:"WALLET_API_KEY" validate:"required"`
	WalletUserEmail  string        `envconfig:"WALLET_USER_EMAIL" validate:"required,email"`
	WalletTimeout    time.Duration `envconfig:"WALLET_TIMEOUT" default:"30s" validate:"gt=0"`
	SignatureTimeout time.Duration `envconfig:"SIGNATURE_TIMEOUT" default:"5m" validate:"gt=0"`

	ExplorerCluster string `envconfig:"EXPLORER_CLUSTER" default:"devnet"`
}

// loadConfig reads SOLSEND_* variables and validates the result.
func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return config{}, err
	}

	return cfg, nil
}
