// Package suggest proposes a target schema path for a source payload path.
//
// A prior mapping for an equivalent source wins. Otherwise the source path
// is simplified: indices collapse, SOAP wrappers and namespace prefixes go
// away, and common envelope keys such as "data" or "response" are dropped
// from the front.
package suggest
