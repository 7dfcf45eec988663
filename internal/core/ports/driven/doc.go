// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SimilarityScorer: Fuzzy string similarity scoring
//   - DatasetReader: Imports tabular response data
//   - DatasetExporter: Writes categorized data to a delimited file
//   - ProjectStore: Project file persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SessionStore: Recent-project history. Without it, `codify recent` is empty.
//   - ProjectWatcher: External-change notification for the open project file.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
