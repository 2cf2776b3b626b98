package cli

import (
	"context"
	"os"

	"github.com/gabapcia/solsend/internal/transfer"
	"github.com/gabapcia/solsend/internal/wallet"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the solsend CLI application.
//
// It registers all available commands, including:
//
//   - `wallet`: Prints the custodial wallet address.
//   - `send`: Builds, signs and submits a single SOL transfer.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - ws: The wallet service used to look up the custodial address.
//   - ts: The transfer service that runs the submission pipeline.
//   - explorerCluster: Cluster name used in explorer links (e.g., devnet).
func Run(ctx context.Context, ws wallet.Service, ts transfer.Service, explorerCluster string) error {
	return newApp(ws, ts, explorerCluster).Run(ctx, os.Args)
}

func newApp(ws wallet.Service, ts transfer.Service, explorerCluster string) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "solsend",
		Description:           "Send SOL from an embedded custodial wallet.",
		Usage:                 "solsend [command] [flags]",
		Commands: []*cli.Command{
			walletCommand(ws),
			sendCommand(ws, ts, explorerCluster),
		},
	}
}
