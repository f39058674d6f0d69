// Package mocks provides an Otel for tests whose spans go nowhere.
package mocks

import (
	"conectapro/infras/otel"

	"go.opentelemetry.io/otel/trace/noop"
)

func NewOtel() otel.Otel {
	return otel.NewWithProvider(noop.NewTracerProvider())
}
