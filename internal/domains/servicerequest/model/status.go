package model

import (
	"slices"
	"strings"
)

type Status string

const (
	StatusPending             Status = "PENDING_PROVIDER_CONFIRMATION"
	StatusAccepted            Status = "ACCEPTED"
	StatusRejected            Status = "REJECTED"
	StatusInProgress          Status = "IN_PROGRESS"
	StatusCompleted           Status = "COMPLETED"
	StatusCancelled           Status = "CANCELLED"
	StatusCancelledByProvider Status = "CANCELLED_BY_PROVIDER"
)

// Derived list filters.
const (
	FilterUpcoming = "UPCOMING"
	FilterAll      = "ALL"
)

var statuses = []Status{
	StatusPending,
	StatusAccepted,
	StatusRejected,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusCancelledByProvider,
}

var terminal = []Status{StatusRejected, StatusCompleted, StatusCancelled, StatusCancelledByProvider}

func ParseStatus(raw string) (Status, bool) {
	status := Status(strings.ToUpper(strings.TrimSpace(raw)))

	return status, slices.Contains(statuses, status)
}

func (s Status) IsTerminal() bool {
	return slices.Contains(terminal, s)
}

func (s Status) String() string {
	return string(s)
}

// NonTerminal lists every status from which the request can still move.
func NonTerminal() []Status {
	res := make([]Status, 0, len(statuses))

	for _, status := range statuses {
		if !status.IsTerminal() {
			res = append(res, status)
		}
	}

	return res
}

// ExpandFilter turns a list filter into the statuses it matches. A nil result means no filter.
func ExpandFilter(raw string) ([]Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", FilterAll:
		return nil, true
	case FilterUpcoming:
		return []Status{StatusPending, StatusAccepted, StatusInProgress}, true
	}

	status, ok := ParseStatus(raw)
	if !ok {
		return nil, false
	}

	return []Status{status}, true
}

type Event string

const (
	EventAccept           Event = "accept"
	EventReject           Event = "reject"
	EventStart            Event = "start"
	EventCancelByProvider Event = "cancel_by_provider"
	EventCancelByClient   Event = "cancel_by_client"
	EventComplete         Event = "complete"
)

// Actor is the party allowed to fire an event.
type Actor int

const (
	ActorProvider Actor = iota
	ActorClient
	ActorSystem
)

type Transition struct {
	From  []Status
	To    Status
	Actor Actor
}

var transitions = map[Event]Transition{
	EventAccept:           {From: []Status{StatusPending}, To: StatusAccepted, Actor: ActorProvider},
	EventReject:           {From: []Status{StatusPending}, To: StatusRejected, Actor: ActorProvider},
	EventStart:            {From: []Status{StatusAccepted}, To: StatusInProgress, Actor: ActorProvider},
	EventCancelByProvider: {From: NonTerminal(), To: StatusCancelledByProvider, Actor: ActorProvider},
	EventCancelByClient:   {From: []Status{StatusPending, StatusAccepted}, To: StatusCancelled, Actor: ActorClient},
	EventComplete:         {From: []Status{StatusAccepted, StatusInProgress}, To: StatusCompleted, Actor: ActorSystem},
}

func TransitionFor(event Event) (Transition, bool) {
	transition, ok := transitions[event]

	return transition, ok
}

func (t Transition) Allows(from Status) bool {
	return slices.Contains(t.From, from)
}

// Next returns the status event leads to from the given one.
func Next(from Status, event Event) (Status, bool) {
	transition, ok := transitions[event]
	if !ok || !transition.Allows(from) {
		return from, false
	}

	return transition.To, true
}
