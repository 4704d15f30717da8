// Package orchestrator wires the definition → component tree → processing →
// page renderer pipeline behind a single Generate call.
package orchestrator
