// Package diagnostic provides coded errors, warnings and infos produced
// while checking mapping histories against example payloads.
//
// Key capabilities:
//   - Stable codes (path_not_found, invalid_direction, ...) for tooling
//   - Known-path suggestions attached to unresolved paths
//   - JSON output with severity names
package diagnostic
