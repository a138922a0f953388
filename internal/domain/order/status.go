package order

import "fmt"

// Status is the lifecycle state of a placed order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

// transitions is the single source of truth for allowed status moves. Both
// transition validation and the command surface consult this table, so the
// two cannot drift apart.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transitions are possible from s.
func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// NextStatuses returns the statuses reachable from s in one transition.
// The returned slice is a copy.
func (s Status) NextStatuses() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether the move s -> target is allowed.
func (s Status) CanTransition(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Role identifies which side of an order a user is acting as.
type Role string

const (
	// RoleCook is the kitchen side: it drives every status transition.
	RoleCook Role = "cook"
	// RoleBuyer is the consuming side: read-only visibility, no transitions.
	RoleBuyer Role = "buyer"
)

// AllowedForRole returns the transitions a role may request from s. Buyers
// get none; this gates the command surface, not real authorization, which
// stays with the backend.
func AllowedForRole(role Role, s Status) []Status {
	if role != RoleCook {
		return nil
	}
	return s.NextStatuses()
}

// InvalidTransitionError indicates a requested status move outside the
// transition table. It is raised client-side before any network call.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}
