// Package match locates user-supplied paths inside a known path inventory.
//
// Matching tolerates array-index variance and XML namespace prefixes, and
// knows about the SOAP Envelope/Body wrappers that XML-derived payloads
// carry at their root.
//
// Key functions:
//   - Matcher.FindMatch: exact, envelope-stripped and body-prefixed lookup
//   - Matcher.SuggestSimilar: substring hints for unmatched paths
//   - RankClosest: Levenshtein-ranked hints when no substring hint exists
package match
