// Package jsonschema implements a high-performance JSON Schema validator for Go
// covering drafts 6, 7, 2019-09, and 2020-12, providing direct struct validation,
// smart unmarshaling with defaults, and a separated validation workflow.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package jsonschema
