// Package sim provides the core turn-driven restaurant simulation.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - table.go: Table lifecycle (free → awaiting-order → awaiting-kitchen →
//     awaiting-receipt → awaiting-cleaning → free) and its guards
//   - kitchen.go: the to-do FIFO and the ready pool keyed by table
//   - simulator.go: the orchestrator that owns the queue and issues every
//     transition
//
// # Architecture
//
// The sim package defines the state machine and its collaborators'
// interfaces; data and presentation live in sub-packages:
//   - sim/menu/: menu catalog and its loaders
//   - sim/roster/: initial table roster
//   - sim/trace/: command and transition recording
//   - sim/render/: human-readable output
//
// # Key Interfaces
//
// The extension points are single-method interfaces:
//   - ChoiceStrategy: which dishes a seated client orders
//   - GroupSizer: how many clients arrive together
//   - Command: one discrete step (admit, seat, order, prepare, serve, bill, clean, show)
//   - Presenter: renders state for show/status commands
//
// Everything runs on a single goroutine, one command at a time. A command
// either applies its whole transition or returns one of the sentinel errors
// in errors.go and changes nothing.
package sim
