// Package analyze walks example payloads.
//
// It works on the generic value tree produced by JSON/YAML decoders or by an
// XML-to-object parser that keeps namespaces and array-ness:
// map[string]any, []any, scalars and nil.
//
// Key types:
//   - Extractor: enumerates every structural path of a payload into a
//     fieldpath.Set, collapsing array indices to "[*]"
//   - Resolver: navigates a payload to the value addressed by a path
//
// Both take the reserved XML metadata keys ("$", "$ns", "_") and the array
// sampling policy as injected options.
package analyze
