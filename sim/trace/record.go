// Package trace provides step-by-step recording of simulator commands and
// table state changes for after-the-fact analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// CommandRecord captures a single command issued to the simulator.
type CommandRecord struct {
	Step    int
	Command string
	OK      bool
	Reason  string // error text when OK is false
}

// TransitionRecord captures a single table state change.
type TransitionRecord struct {
	Step    int
	TableID uint32
	From    string
	To      string
	GroupID string // group occupying the table during the transition (empty once freed)
}
