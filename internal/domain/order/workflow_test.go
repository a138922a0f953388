package order

import (
	"context"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockAPI struct {
	mu      sync.Mutex
	orders  []Order
	updates []Update

	updateErr error
	listErr   error

	// release, when set, blocks UpdateOrder until closed.
	release chan struct{}
	started chan struct{}
}

func (m *mockAPI) ListOrders(_ context.Context) ([]Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *mockAPI) UpdateOrder(_ context.Context, id int64, update Update) (Order, error) {
	if m.started != nil {
		close(m.started)
		m.started = nil
	}
	if m.release != nil {
		<-m.release
	}
	if m.updateErr != nil {
		return Order{}, m.updateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, update)
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = update.Status
			return m.orders[i], nil
		}
	}
	return Order{ID: id, Status: update.Status}, nil
}

// --- Tests ---

func TestRequestTransition_Allowed(t *testing.T) {
	api := &mockAPI{orders: []Order{{ID: 1, Status: StatusPending}}}
	wf := NewWorkflow(api)

	refreshed, err := wf.RequestTransition(context.Background(), api.orders[0], StatusPreparing)
	require.NoError(t, err)
	require.Len(t, refreshed, 1)
	assert.Equal(t, StatusPreparing, refreshed[0].Status)
}

func TestRequestTransition_SkippingStateFails(t *testing.T) {
	api := &mockAPI{}
	wf := NewWorkflow(api)

	_, err := wf.RequestTransition(context.Background(), Order{ID: 1, Status: StatusPending}, StatusReady)

	var itErr *InvalidTransitionError
	require.ErrorAs(t, err, &itErr)
	assert.Equal(t, StatusPending, itErr.From)
	assert.Equal(t, StatusReady, itErr.To)
	assert.Empty(t, api.updates, "no backend call should be made on a local fast-fail")
}

func TestRequestTransition_TerminalStatesFrozen(t *testing.T) {
	api := &mockAPI{}
	wf := NewWorkflow(api)

	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		for _, to := range Statuses {
			_, err := wf.RequestTransition(context.Background(), Order{ID: 1, Status: from}, to)
			var itErr *InvalidTransitionError
			assert.ErrorAs(t, err, &itErr, "%s -> %s must fail", from, to)
		}
	}
	assert.Empty(t, api.updates)
}

func TestRequestTransition_BackendErrorPropagates(t *testing.T) {
	api := &mockAPI{updateErr: errors.New("backend unavailable")}
	wf := NewWorkflow(api)

	_, err := wf.RequestTransition(context.Background(), Order{ID: 1, Status: StatusReady}, StatusCompleted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update order")
}

func TestRequestTransition_RefreshesFromBackend(t *testing.T) {
	api := &mockAPI{orders: []Order{
		{ID: 1, Status: StatusPending},
		{ID: 2, Status: StatusReady},
	}}
	wf := NewWorkflow(api)

	refreshed, err := wf.RequestTransition(context.Background(), api.orders[1], StatusCompleted)
	require.NoError(t, err)
	assert.Len(t, refreshed, 2, "result must be the re-fetched list, not a local patch")
}

func TestRequestTransition_InFlightGuard(t *testing.T) {
	api := &mockAPI{
		orders:  []Order{{ID: 1, Status: StatusPending}},
		release: make(chan struct{}),
		started: make(chan struct{}),
	}
	wf := NewWorkflow(api)
	o := api.orders[0]

	done := make(chan error, 1)
	go func() {
		_, err := wf.RequestTransition(context.Background(), o, StatusPreparing)
		done <- err
	}()

	<-api.started
	_, err := wf.RequestTransition(context.Background(), o, StatusPreparing)
	assert.ErrorIs(t, err, ErrTransitionInFlight)

	close(api.release)
	require.NoError(t, <-done)

	// Guard releases once the first request settles.
	_, err = wf.RequestTransition(context.Background(), Order{ID: 1, Status: StatusPreparing}, StatusReady)
	require.NoError(t, err)
}

func TestCancel_ReasonNotSentToBackend(t *testing.T) {
	api := &mockAPI{orders: []Order{{ID: 7, Status: StatusPreparing}}}
	wf := NewWorkflow(api)

	_, err := wf.Cancel(context.Background(), api.orders[0], ReasonOutOfIngredients)
	require.NoError(t, err)

	require.Len(t, api.updates, 1)
	assert.Equal(t, Update{Status: StatusCancelled}, api.updates[0],
		"the persisted change is the bare cancelled status; the reason stays local")
}

func TestCancel_TerminalFails(t *testing.T) {
	wf := NewWorkflow(&mockAPI{})

	_, err := wf.Cancel(context.Background(), Order{ID: 1, Status: StatusCancelled}, ReasonPaymentIssue)
	var itErr *InvalidTransitionError
	require.ErrorAs(t, err, &itErr)
}
