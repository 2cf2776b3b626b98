package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/solsend/internal/handlers/cli"
	"github.com/gabapcia/solsend/internal/infra/blockchain/solana"
	"github.com/gabapcia/solsend/internal/infra/wallet/metakeep"
	"github.com/gabapcia/solsend/internal/pkg/logger"
	"github.com/gabapcia/solsend/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/solsend/internal/pkg/transport/http"
	"github.com/gabapcia/solsend/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/solsend/internal/transfer"
	"github.com/gabapcia/solsend/internal/wallet"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/google/uuid"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	rpcConn := jsonrpc.NewClient(
		httptransport.NewClient(httptransport.WithTimeout(cfg.RPCTimeout)),
		cfg.RPCEndpoint,
	)
	network := solana.NewClient(rpcConn, solana.WithCommitment(rpc.CommitmentType(cfg.RPCCommitment)))

	sdk := metakeep.NewClient(
		httptransport.NewClient(httptransport.WithTimeout(cfg.WalletTimeout)),
		cfg.WalletAPIURL,
		cfg.WalletAPIKey,
		cfg.WalletUserEmail,
	)
	walletService := wallet.NewService(sdk, wallet.WithTimeout(cfg.SignatureTimeout))
	signer := wallet.NewSigner(sdk, wallet.WithTimeout(cfg.SignatureTimeout))

	transferService := transfer.New(network, signer, transfer.WithStateObserver(printProgress))

	return cli.Run(ctx, walletService, transferService, cfg.ExplorerCluster)
}

// printProgress reports each pipeline step on stderr, keeping stdout for results.
func printProgress(_ context.Context, attemptID uuid.UUID, state transfer.State) {
	if state == transfer.StateAwaitingSignature {
		fmt.Fprintf(os.Stderr, "[%s] %s: approve the transaction in your wallet\n", attemptID, state)
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", attemptID, state)
}
