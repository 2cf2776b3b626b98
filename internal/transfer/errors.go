package transfer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAddress is returned when a sender or recipient is not a valid Solana address.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount is returned when a transfer of zero base units is requested.
	ErrInvalidAmount = errors.New("invalid amount: must be greater than zero")

	// ErrNetworkUnavailable is returned when the RPC node cannot be reached or refuses to serve a read.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrMalformedResponse is returned when a node or wallet response does not match its schema.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrSignatureParse is returned when the signer's success payload carries no usable signature.
	ErrSignatureParse = errors.New("signature parse error")

	// ErrSigningTimedOut is returned when the signing authority does not answer in time.
	ErrSigningTimedOut = errors.New("signing request timed out")

	// ErrInvalidSignature is returned when a signature does not verify against the
	// signable message and the fee payer.
	ErrInvalidSignature = errors.New("signature does not verify against the transaction message")

	// ErrSubmissionOutcomeUnknown is returned when submitting a signed transaction
	// failed in transport or returned an unreadable result. The transaction may have
	// landed; Result.TransactionID identifies it for lookup.
	ErrSubmissionOutcomeUnknown = errors.New("submission outcome unknown")

	// ErrAttemptInProgress is returned when a transfer is requested while another one is running.
	ErrAttemptInProgress = errors.New("a transfer attempt is already in progress")
)

// blockhashExpiredMarkers are fragments of the node messages reporting a stale block reference.
var blockhashExpiredMarkers = []string{
	"Blockhash not found",
	"block height exceeded",
}

// RPCRejectedError reports that the node refused a submitted transaction.
// Reason carries the node's raw error text and Details its raw error data,
// such as the preflight simulation logs.
type RPCRejectedError struct {
	Code    int
	Reason  string
	Details string
}

func (e *RPCRejectedError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("rpc rejected transaction: [%d] %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("rpc rejected transaction: [%d] %s: %s", e.Code, e.Reason, e.Details)
}

// BlockhashExpired reports whether the rejection was caused by a stale block reference.
// Such a failure is fixed by starting a fresh attempt.
func (e *RPCRejectedError) BlockhashExpired() bool {
	for _, marker := range blockhashExpiredMarkers {
		if strings.Contains(e.Reason, marker) {
			return true
		}
	}
	return false
}

// SigningRejectedError reports that the signing authority declined the request.
// Reason carries the authority-supplied text verbatim.
type SigningRejectedError struct {
	Reason string
}

func (e *SigningRejectedError) Error() string {
	return "signing rejected: " + e.Reason
}

// IsRetryable reports whether a fresh attempt, with a newly fetched block
// reference, may succeed where err failed. Nothing in this package retries on
// its own.
//
// A submission with an unknown outcome is never retryable: the first
// transaction may still land, and a fresh attempt would move the funds twice.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrSubmissionOutcomeUnknown) {
		return false
	}

	if errors.Is(err, ErrNetworkUnavailable) || errors.Is(err, ErrSigningTimedOut) {
		return true
	}

	var rejected *RPCRejectedError
	if errors.As(err, &rejected) {
		return rejected.BlockhashExpired()
	}

	return false
}
