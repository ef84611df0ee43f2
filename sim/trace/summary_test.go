package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalCommands != 0 || summary.TotalTransitions != 0 {
		t.Error("expected zero counts for nil trace")
	}
	if summary.CommandCounts == nil || summary.FailureReasons == nil || summary.TransitionsByDest == nil {
		t.Error("maps must be non-nil even for nil trace")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTransitions})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalCommands != 0 {
		t.Errorf("expected 0 commands, got %d", summary.TotalCommands)
	}
	if summary.SucceededCount != 0 || summary.FailedCount != 0 {
		t.Error("expected 0 succeeded and failed")
	}
	if summary.TablesTouched != 0 {
		t.Errorf("expected 0 tables touched, got %d", summary.TablesTouched)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with mixed command outcomes and transitions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTransitions})
	st.RecordCommand(CommandRecord{Step: 1, Command: "admit", OK: true})
	st.RecordCommand(CommandRecord{Step: 2, Command: "seat", OK: true})
	st.RecordCommand(CommandRecord{Step: 3, Command: "seat", OK: false, Reason: "no clients in queue"})
	st.RecordCommand(CommandRecord{Step: 4, Command: "prepare", OK: false, Reason: "no orders to prepare"})
	st.RecordTransition(TransitionRecord{Step: 2, TableID: 1, From: "free", To: "awaiting-order"})
	st.RecordTransition(TransitionRecord{Step: 5, TableID: 2, From: "free", To: "awaiting-order"})
	st.RecordTransition(TransitionRecord{Step: 6, TableID: 1, From: "awaiting-order", To: "awaiting-kitchen"})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalCommands != 4 {
		t.Errorf("expected 4 commands, got %d", summary.TotalCommands)
	}
	if summary.SucceededCount != 2 || summary.FailedCount != 2 {
		t.Errorf("expected 2/2 succeeded/failed, got %d/%d", summary.SucceededCount, summary.FailedCount)
	}
	if summary.CommandCounts["seat"] != 2 {
		t.Errorf("expected seat issued twice, got %d", summary.CommandCounts["seat"])
	}
	if summary.FailureReasons["no orders to prepare"] != 1 {
		t.Error("expected failure reason to be counted")
	}
	if summary.TotalTransitions != 3 || summary.TablesTouched != 2 {
		t.Errorf("expected 3 transitions over 2 tables, got %d over %d", summary.TotalTransitions, summary.TablesTouched)
	}
	if summary.TransitionsByDest["awaiting-order"] != 2 {
		t.Errorf("expected 2 transitions into awaiting-order, got %d", summary.TransitionsByDest["awaiting-order"])
	}
}
