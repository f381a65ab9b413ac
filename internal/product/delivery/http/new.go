package http

import (
	"coffee-assistant/internal/product"
	"coffee-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc product.UseCase
}

// New creates a new HTTP handler for the product domain.
func New(l log.Logger, uc product.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
