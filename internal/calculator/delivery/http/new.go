package http

import (
	"coffee-assistant/internal/calculator"
	"coffee-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc calculator.UseCase
}

// New creates a new HTTP handler for the calculator domain.
func New(l log.Logger, uc calculator.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
