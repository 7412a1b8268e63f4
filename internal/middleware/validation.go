package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/service"
)

// RequestValidator rejects requests that do not match the OpenAPI document
// with a 400 listing every violation. Routes the document does not describe
// pass through untouched. Authentication is left to Authenticate.
func RequestValidator(doc *openapi3.T, logger *slog.Logger) (func(http.Handler) http.Handler, error) {
	// match on path only, whatever host the server is reached through
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         true,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Debug("request rejected by openapi validation",
					"method", r.Method,
					"path", r.URL.Path,
					"error", err,
				)
				api.WriteError(w, http.StatusBadRequest, service.ErrCodeValidation,
					"request does not match the API contract", violationsFrom(err, "request")...)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func violationsFrom(err error, field string) []api.Violation {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []api.Violation
		for _, e := range multi {
			out = append(out, violationsFrom(e, field)...)
		}
		return out
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.Parameter != nil:
			field = reqErr.Parameter.Name
		case reqErr.RequestBody != nil:
			field = "body"
		}
		if reqErr.Err == nil {
			return []api.Violation{{Field: field, Message: reqErr.Reason}}
		}
		return violationsFrom(reqErr.Err, field)
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			field = strings.Join(pointer, ".")
		}
		return []api.Violation{{Field: field, Message: schemaErr.Reason}}
	}

	var parseErr *openapi3filter.ParseError
	if errors.As(err, &parseErr) {
		return []api.Violation{{Field: field, Message: parseErr.Reason}}
	}

	return []api.Violation{{Field: field, Message: err.Error()}}
}
