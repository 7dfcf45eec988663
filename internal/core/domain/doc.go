// Package domain defines the core business entities for Codify.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Response/Dataset: The imported survey responses
//   - Codeframe: The user-defined categories
//   - Ledger: Response-to-category assignments
//   - Project: The aggregate owning all session state
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
