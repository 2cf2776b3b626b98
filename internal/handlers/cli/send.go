package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/solsend/internal/transfer"
	"github.com/gabapcia/solsend/internal/wallet"

	"github.com/urfave/cli/v3"
)

// sendCommand returns a CLI command that runs one transfer attempt.
// Without --from, the custodial wallet is the sender.
//
// Usage example:
//
//	solsend send --to 6xEeDTksyAhBz7QBgzPmYxJN2zbmT7twx5rr1ejnaona --amount 1000000
func sendCommand(ws wallet.Service, ts transfer.Service, explorerCluster string) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Build, sign and submit a single SOL transfer.",
		Usage:       "Transfers lamports to a recipient. The wallet is asked to approve the signature.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Recipient Solana address",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "amount",
				Usage:    "Amount in lamports (1 SOL = 1000000000 lamports)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: "Sender address (defaults to the custodial wallet)",
			},
			&cli.StringFlag{
				Name:  "reason",
				Usage: "Text shown to the user when approving the signature",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sender := c.String("from")
			if sender == "" {
				address, err := ws.Address(ctx)
				if err != nil {
					return err
				}
				sender = address.String()
			}

			result, err := ts.Transfer(ctx, transfer.Intent{
				Sender:    sender,
				Recipient: c.String("to"),
				Amount:    c.Uint64("amount"),
				Reason:    c.String("reason"),
			})

			out := c.Root().Writer
			if err != nil {
				if errors.Is(err, transfer.ErrSubmissionOutcomeUnknown) {
					fmt.Fprintf(out, "transaction %s may have been submitted; check %s before trying again\n",
						result.TransactionID, result.ExplorerURL(explorerCluster))
					return err
				}
				if transfer.IsRetryable(err) {
					fmt.Fprintf(out, "attempt %s failed; a new attempt may succeed\n", result.AttemptID)
				}
				return err
			}

			fmt.Fprintf(out, "transaction: %s\n", result.TransactionID)
			fmt.Fprintf(out, "explorer: %s\n", result.ExplorerURL(explorerCluster))
			return nil
		},
	}
}
