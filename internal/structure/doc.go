// Package structure exposes the path engine to request handlers: it
// analyzes a captured example payload, validates user supplied source
// paths against it, suggests target paths and checks stored mappings.
//
// Handlers own transport and persistence. They hand in an Example (or
// one without payload when nothing was captured yet) and serialize the
// returned results as they see fit; every result type carries JSON tags.
package structure
