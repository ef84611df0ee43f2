package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalCommands     int
	SucceededCount    int
	FailedCount       int
	TotalTransitions  int
	TablesTouched     int
	CommandCounts     map[string]int // command name → times issued
	FailureReasons    map[string]int // reason → occurrences
	TransitionsByDest map[string]int // destination state → count
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		CommandCounts:     make(map[string]int),
		FailureReasons:    make(map[string]int),
		TransitionsByDest: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalCommands = len(st.Commands)
	for _, c := range st.Commands {
		summary.CommandCounts[c.Command]++
		if c.OK {
			summary.SucceededCount++
		} else {
			summary.FailedCount++
			summary.FailureReasons[c.Reason]++
		}
	}

	tables := make(map[uint32]bool)
	for _, tr := range st.Transitions {
		summary.TransitionsByDest[tr.To]++
		tables[tr.TableID] = true
	}
	summary.TotalTransitions = len(st.Transitions)
	summary.TablesTouched = len(tables)

	return summary
}
