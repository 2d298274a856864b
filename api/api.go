// Package api holds the HTTP contract of the service.
package api

import _ "embed"

// OpenAPI is the OpenAPI 3 document requests are validated against.
//
//go:embed openapi.yml
var OpenAPI []byte
