// Package lifecycle defines the order status enumeration and the intended
// transition graph. By default any enumerated status is accepted as the
// next status of any order; strict mode restricts moves to the forward
// lifecycle with CANCELLED reachable from any non-terminal state.
package lifecycle

import (
	"errors"

	"restaurant-orders-api/models"
)

// Transition defines one edge of the intended lifecycle
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// forwardTransitions is the intended forward-only lifecycle
var forwardTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed},
	{From: models.StatusConfirmed, To: models.StatusInProgress},
	{From: models.StatusInProgress, To: models.StatusCompleted},
	// CANCELLED is the escape hatch from every non-terminal state
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusConfirmed, To: models.StatusCancelled},
	{From: models.StatusInProgress, To: models.StatusCancelled},
}

type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range forwardTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// AllStatuses lists the five order statuses.
var AllStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusInProgress,
	models.StatusCompleted,
	models.StatusCancelled,
}

// ValidStatus reports whether s is one of the five enumerated statuses.
func ValidStatus(s models.OrderStatus) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// NextStatuses returns all valid next states from a given state under the
// forward lifecycle.
func NextStatuses(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range forwardTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks a move under the given mode. Permissive mode accepts
// any enumerated target regardless of the current status, which is how the
// system has historically behaved.
func CanTransition(from, to models.OrderStatus, strict bool) error {
	if !ValidStatus(to) {
		return errors.New("unknown status: " + string(to))
	}
	if !strict {
		return nil
	}
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed. Valid next states from " + string(from) + " are: " + describeNext(from),
	)
}

func describeNext(status models.OrderStatus) string {
	nexts := NextStatuses(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// Graph returns the full intended lifecycle for documentation.
func Graph() []Transition {
	return forwardTransitions
}
