package api

//go:generate go tool oapi-codegen -config cfg.yaml openapi.yaml

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document.
// The document is loaded once; callers must not mutate the result.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		swagger, swaggerErr = loadSwagger()
	})
	return swagger, swaggerErr
}

func loadSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// RawSpec returns a fresh copy of the document for callers that need to
// adjust it, such as routers that ignore the servers block.
func RawSpec() (*openapi3.T, error) {
	return loadSwagger()
}
