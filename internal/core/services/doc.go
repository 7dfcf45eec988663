// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// All mutations run synchronously on the caller's goroutine; there is
// exactly one mutator (the CLI run or the TUI update loop).
package services
