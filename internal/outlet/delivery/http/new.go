package http

import (
	"coffee-assistant/internal/outlet"
	"coffee-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc outlet.UseCase
}

// New creates a new HTTP handler for the outlet domain.
func New(l log.Logger, uc outlet.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
