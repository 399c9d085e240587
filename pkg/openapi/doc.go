// Package openapi exports the facet metadata declared by catalogue packages
// as OpenAPI 3 schemas, so downstream tooling can consume the message
// constraints (length bounds, patterns, numeric minimums, code sets) without
// linking the validators themselves.
package openapi
