package usecase

import (
	"coffee-assistant/internal/calculator"
	pkgCalculator "coffee-assistant/pkg/calculator"
	"coffee-assistant/pkg/log"
)

// implUseCase computes results in process.
type implUseCase struct {
	l log.Logger
}

var _ calculator.UseCase = (*implUseCase)(nil)

// New creates the in-process calculator.
func New(l log.Logger) *implUseCase {
	return &implUseCase{l: l}
}

// remoteUseCase delegates to a calculator HTTP service.
type remoteUseCase struct {
	client *pkgCalculator.Client
	l      log.Logger
}

var _ calculator.UseCase = (*remoteUseCase)(nil)

// NewRemote creates a calculator backed by the HTTP service behind client.
func NewRemote(client *pkgCalculator.Client, l log.Logger) *remoteUseCase {
	return &remoteUseCase{client: client, l: l}
}
