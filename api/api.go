// Package api carries the OpenAPI contract. The HTTP adapter serves it
// at /openapi.yml and validates incoming requests against it.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPISpec []byte
