package trace

// TraceLevel controls the verbosity of simulation tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTransitions captures every command and table transition.
	TraceLevelTransitions TraceLevel = "transitions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:        true,
	TraceLevelTransitions: true,
	"":                    true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects records during a simulation run.
type SimulationTrace struct {
	Config      TraceConfig
	Commands    []CommandRecord
	Transitions []TransitionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Commands:    make([]CommandRecord, 0),
		Transitions: make([]TransitionRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on nil.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelTransitions
}

// RecordCommand appends a command record.
func (st *SimulationTrace) RecordCommand(record CommandRecord) {
	st.Commands = append(st.Commands, record)
}

// RecordTransition appends a table transition record.
func (st *SimulationTrace) RecordTransition(record TransitionRecord) {
	st.Transitions = append(st.Transitions, record)
}

// TableHistory returns the sequence of states a table passed through,
// starting with the From state of its first recorded transition.
func (st *SimulationTrace) TableHistory(tableID uint32) []string {
	var states []string
	for _, tr := range st.Transitions {
		if tr.TableID != tableID {
			continue
		}
		if len(states) == 0 {
			states = append(states, tr.From)
		}
		states = append(states, tr.To)
	}
	return states
}
