// Package openapi owns the OpenAPI 3 description of the HTTP API. The same
// document is served to Swagger UI through swag and used by kin-openapi to
// validate incoming requests.
package openapi

import (
	_ "embed"
	"sync"

	"github.com/swaggo/swag"
)

//go:embed openapi.json
var documentTemplate string

const (
	title       = "Orders API"
	description = "Create and list customer orders."
)

var registerOnce sync.Once

// Document renders the OpenAPI document for the given service version.
func Document(version string) string {
	spec := newSpec(version)
	return spec.ReadDoc()
}

// Register makes the document available to swag readers such as the
// Swagger UI handler. Only the first call has an effect.
func Register(version string) {
	registerOnce.Do(func() {
		swag.Register(swag.Name, newSpec(version))
	})
}

func newSpec(version string) *swag.Spec {
	return &swag.Spec{
		Version:          version,
		Title:            title,
		Description:      description,
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  documentTemplate,
	}
}
