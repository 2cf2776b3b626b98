package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/solsend/internal/wallet"

	"github.com/urfave/cli/v3"
)

// walletCommand returns a CLI command that prints the custodial wallet address.
//
// Usage example:
//
//	solsend wallet
func walletCommand(ws wallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "wallet",
		Description: "Look up the Solana address of the custodial wallet.",
		Usage:       "Prints the wallet's Solana address.",
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := ws.Address(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, address.String())
			return err
		},
	}
}
