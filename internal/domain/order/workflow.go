package order

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// ErrTransitionInFlight indicates a transition request for the same order is
// already outstanding; the duplicate is rejected before any network call.
var ErrTransitionInFlight = errors.New("a status update for this order is already in progress")

// Workflow requests order status transitions and refreshes the order list
// afterwards. Transition legality is checked against the status table before
// the backend is contacted; this is a fast-fail UX guard, not a security
// boundary, since the backend re-validates everything.
type Workflow struct {
	api API

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewWorkflow creates a Workflow backed by the given gateway client.
func NewWorkflow(api API) *Workflow {
	return &Workflow{
		api:      api,
		inFlight: make(map[int64]struct{}),
	}
}

// RequestTransition asks the backend to move an order to target. It fails
// with *InvalidTransitionError when the move is outside the transition table
// for the locally-known status, and with ErrTransitionInFlight when a request
// for the same order is still outstanding.
//
// On success the full order list is re-fetched from the backend rather than
// patched locally: fields like updated_at are authoritative server-side.
func (w *Workflow) RequestTransition(ctx context.Context, o Order, target Status) ([]Order, error) {
	if !o.Status.CanTransition(target) {
		return nil, &InvalidTransitionError{From: o.Status, To: target}
	}

	if !w.acquire(o.ID) {
		return nil, ErrTransitionInFlight
	}
	defer w.release(o.ID)

	lg := zctx.From(ctx)
	lg.Info("Requesting order transition",
		zap.Int64("order_id", o.ID),
		zap.String("from", string(o.Status)),
		zap.String("to", string(target)),
	)

	if _, err := w.api.UpdateOrder(ctx, o.ID, Update{Status: target}); err != nil {
		return nil, errors.Wrap(err, "update order")
	}

	refreshed, err := w.api.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "refresh orders")
	}
	return refreshed, nil
}

// Cancel moves an order to cancelled. The reason is informational only: it is
// shown to the operator and logged, but never sent to the backend; the
// persisted state change is always the single value "cancelled".
func (w *Workflow) Cancel(ctx context.Context, o Order, reason CancelReason) ([]Order, error) {
	if reason != "" {
		zctx.From(ctx).Info("Cancelling order",
			zap.Int64("order_id", o.ID),
			zap.String("reason", string(reason)),
		)
	}
	return w.RequestTransition(ctx, o, StatusCancelled)
}

func (w *Workflow) acquire(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, busy := w.inFlight[id]; busy {
		return false
	}
	w.inFlight[id] = struct{}{}
	return true
}

func (w *Workflow) release(id int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inFlight, id)
}

// CancelReason is the operator-facing explanation offered when cancelling.
// Reasons are cosmetic: the backend schema has no field for them.
type CancelReason string

const (
	ReasonOutOfIngredients CancelReason = "out of ingredients"
	ReasonTakingTooLong    CancelReason = "taking too long"
	ReasonUnableToFulfill  CancelReason = "unable to fulfill"
	ReasonPaymentIssue     CancelReason = "payment issue"
)

// CancelReasons lists the reasons offered by the cook-facing surface.
var CancelReasons = []CancelReason{
	ReasonOutOfIngredients,
	ReasonTakingTooLong,
	ReasonUnableToFulfill,
	ReasonPaymentIssue,
}
