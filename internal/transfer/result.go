package transfer

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

const explorerBaseURL = "https://explorer.solana.com/tx/"

// Intent is a user's request to move funds.
type Intent struct {
	Sender    string
	Recipient string
	Amount    uint64 // lamports

	// Reason is shown to the user approving the signature. A default
	// describing the transfer is used when empty.
	Reason string
}

// Result is the terminal outcome of a transfer attempt.
//
// TransactionID is set on success. It is also set alongside Err when the
// submission outcome is unknown (ErrSubmissionOutcomeUnknown), so the caller
// can look the transaction up before starting another attempt.
type Result struct {
	AttemptID     uuid.UUID
	State         State
	TransactionID string
	Err           error
}

// ExplorerURL returns a link to the transaction on the public block explorer.
// It is empty when the attempt carries no transaction id. The cluster query is
// omitted for mainnet.
func (r Result) ExplorerURL(cluster string) string {
	if r.TransactionID == "" {
		return ""
	}

	link := explorerBaseURL + url.PathEscape(r.TransactionID)
	if cluster == "" || cluster == "mainnet-beta" {
		return link
	}
	return fmt.Sprintf("%s?cluster=%s", link, url.QueryEscape(cluster))
}
