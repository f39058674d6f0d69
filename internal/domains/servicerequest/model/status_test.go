package model_test

import (
	"testing"

	"conectapro/internal/domains/servicerequest/model"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	allowed := map[model.Event]map[model.Status]model.Status{
		model.EventAccept: {model.StatusPending: model.StatusAccepted},
		model.EventReject: {model.StatusPending: model.StatusRejected},
		model.EventStart:  {model.StatusAccepted: model.StatusInProgress},
		model.EventCancelByProvider: {
			model.StatusPending:    model.StatusCancelledByProvider,
			model.StatusAccepted:   model.StatusCancelledByProvider,
			model.StatusInProgress: model.StatusCancelledByProvider,
		},
		model.EventCancelByClient: {
			model.StatusPending:  model.StatusCancelled,
			model.StatusAccepted: model.StatusCancelled,
		},
		model.EventComplete: {
			model.StatusAccepted:   model.StatusCompleted,
			model.StatusInProgress: model.StatusCompleted,
		},
	}

	all := []model.Status{
		model.StatusPending,
		model.StatusAccepted,
		model.StatusRejected,
		model.StatusInProgress,
		model.StatusCompleted,
		model.StatusCancelled,
		model.StatusCancelledByProvider,
	}

	for event, table := range allowed {
		for _, from := range all {
			t.Run(string(event)+"/"+from.String(), func(t *testing.T) {
				next, ok := model.Next(from, event)

				want, wantOK := table[from]
				assert.Equal(t, wantOK, ok)

				if wantOK {
					assert.Equal(t, want, next)
				} else {
					assert.Equal(t, from, next)
				}
			})
		}
	}
}

func TestTerminalStatusesNeverMove(t *testing.T) {
	events := []model.Event{
		model.EventAccept,
		model.EventReject,
		model.EventStart,
		model.EventCancelByProvider,
		model.EventCancelByClient,
		model.EventComplete,
	}

	for _, status := range []model.Status{model.StatusRejected, model.StatusCompleted, model.StatusCancelled, model.StatusCancelledByProvider} {
		assert.True(t, status.IsTerminal())

		for _, event := range events {
			_, ok := model.Next(status, event)
			assert.False(t, ok, "%s must not leave %s", event, status)
		}
	}
}

func TestNextUnknownEvent(t *testing.T) {
	_, ok := model.Next(model.StatusPending, model.Event("teleport"))

	assert.False(t, ok)
}

func TestExpandFilter(t *testing.T) {
	tests := []struct {
		raw    string
		want   []model.Status
		wantOK bool
	}{
		{raw: "", want: nil, wantOK: true},
		{raw: "ALL", want: nil, wantOK: true},
		{raw: "upcoming", want: []model.Status{model.StatusPending, model.StatusAccepted, model.StatusInProgress}, wantOK: true},
		{raw: "COMPLETED", want: []model.Status{model.StatusCompleted}, wantOK: true},
		{raw: "DONE", want: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := model.ExpandFilter(tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNonTerminal(t *testing.T) {
	assert.ElementsMatch(t, []model.Status{model.StatusPending, model.StatusAccepted, model.StatusInProgress}, model.NonTerminal())
}
