// Package diagnostic provides structured errors, warnings and notes produced
// while validating and resolving module description files.
//
// Key capabilities:
//   - Missing or duplicate module names
//   - Unknown selector scope modes
//   - Empty or malformed references and ids
//   - Notes about forward-reference detection and ordering decisions
package diagnostic
