// Package handlers implements HTTP handlers for the EasyDinar API.
package handlers

import (
	"log/slog"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/service"
)

// Services groups the service dependencies of the handlers
type Services struct {
	Ledger       service.Ledger
	Transactions service.TransactionLister
	Sessions     service.SessionManager
	TwoFactor    service.TwoFactorEnroller
	Users        service.UserDirectory
	Exchange     service.ExchangeRates
	Directory    service.LocationDirectory
	Health       service.HealthChecker
}

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	ledger        service.Ledger
	transactions  service.TransactionLister
	sessions      service.SessionManager
	twoFactor     service.TwoFactorEnroller
	users         service.UserDirectory
	exchange      service.ExchangeRates
	directory     service.LocationDirectory
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

var _ api.StrictServerInterface = (*Handler)(nil)

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	return &Handler{
		ledger:        svc.Ledger,
		transactions:  svc.Transactions,
		sessions:      svc.Sessions,
		twoFactor:     svc.TwoFactor,
		users:         svc.Users,
		exchange:      svc.Exchange,
		directory:     svc.Directory,
		healthChecker: svc.Health,
		logger:        logger,
	}
}
