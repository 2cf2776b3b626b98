package transfer

import (
	"context"
	"fmt"

	"github.com/gabapcia/solsend/internal/pkg/logger"

	"github.com/google/uuid"
)

// State is a step of a transfer attempt's lifecycle.
type State int

const (
	StateIdle State = iota
	StateBuildingTransaction
	StateAwaitingSignature
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuildingTransaction:
		return "building_transaction"
	case StateAwaitingSignature:
		return "awaiting_signature"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no transition can leave s.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// transitions lists the forward-only edges of the lifecycle.
var transitions = map[State][]State{
	StateIdle:                {StateBuildingTransaction},
	StateBuildingTransaction: {StateAwaitingSignature, StateFailed},
	StateAwaitingSignature:   {StateSubmitting, StateFailed},
	StateSubmitting:          {StateSucceeded, StateFailed},
}

func (s State) canTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StateObserver is notified every time an attempt changes state.
type StateObserver func(ctx context.Context, attemptID uuid.UUID, state State)

// attempt tracks the lifecycle of a single transfer.
type attempt struct {
	id       uuid.UUID
	state    State
	observer StateObserver
}

func newAttempt(observer StateObserver) *attempt {
	return &attempt{
		id:       uuid.New(),
		state:    StateIdle,
		observer: observer,
	}
}

// moveTo advances the attempt. Backward or skipping transitions are programming errors.
func (a *attempt) moveTo(ctx context.Context, next State) {
	if !a.state.canTransitionTo(next) {
		panic(fmt.Sprintf("transfer: illegal state transition %s -> %s", a.state, next))
	}

	logger.Debug(ctx, "transfer state changed",
		"attempt.state.from", a.state.String(),
		"attempt.state.to", next.String(),
	)

	a.state = next
	if a.observer != nil {
		a.observer(ctx, a.id, next)
	}
}

// fail moves the attempt to StateFailed and returns its terminal result.
func (a *attempt) fail(ctx context.Context, err error) Result {
	a.moveTo(ctx, StateFailed)
	return Result{
		AttemptID: a.id,
		State:     StateFailed,
		Err:       err,
	}
}

// succeed moves the attempt to StateSucceeded and returns its terminal result.
func (a *attempt) succeed(ctx context.Context, transactionID string) Result {
	a.moveTo(ctx, StateSucceeded)
	return Result{
		AttemptID:     a.id,
		State:         StateSucceeded,
		TransactionID: transactionID,
	}
}
