package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/middleware"
	"github.com/benx421/easydinar/internal/repository"
	"github.com/benx421/easydinar/internal/service"
)

const (
	tracerName   = "github.com/benx421/easydinar/internal/handlers"
	maxBodyBytes = 1 << 20
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	handler *Handler,
	verifier service.TokenVerifier,
	idempotency repository.IdempotencyRepository,
	logger *slog.Logger,
) (http.Handler, error) {
	doc, err := api.RawSpec()
	if err != nil {
		return nil, err
	}
	validate, err := middleware.RequestValidator(doc, logger)
	if err != nil {
		return nil, fmt.Errorf("request validator: %w", err)
	}

	strictHandler := api.NewStrictHandlerWithOptions(handler, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.WriteRequestError,
		ResponseErrorHandlerFunc: handler.WriteError,
	})

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter: mux,
		// Applied in reverse: Authenticate runs first so idempotency keys
		// are scoped to the caller.
		Middlewares: []api.MiddlewareFunc{
			middleware.Idempotency(idempotency, logger),
			middleware.Authenticate(verifier, handler.WriteError),
		},
		ErrorHandlerFunc: handler.WriteRequestError,
	})

	var finalHandler http.Handler = mux
	finalHandler = validate(finalHandler)
	finalHandler = http.MaxBytesHandler(finalHandler, maxBodyBytes)
	finalHandler = middleware.RequestLogger(logger)(finalHandler)
	finalHandler = middleware.Tracing(tracerName)(finalHandler)

	return finalHandler, nil
}
