package memory

// Window is an inclusive range of message sequence numbers that a
// summarization attempt should cover.
type Window struct {
	Start int
	End   int
}

// PlanWindow decides whether a new summarization should run given the highest
// saved sequence number, and if so which trailing window it should cover.
//
// Returns false when the conversation has not yet reached the summarize-after
// threshold. Otherwise the window ends at lastSavedSeq and starts at most
// rollingWindowSize messages back, with the start rounded up to the nearest
// even sequence so a user/assistant pair is never split.
func PlanWindow(lastSavedSeq, summarizeAfterSeq, rollingWindowSize int) (Window, bool) {
	if lastSavedSeq < summarizeAfterSeq {
		return Window{}, false
	}

	end := lastSavedSeq
	start := end - rollingWindowSize + 1
	if start < 0 {
		start = 0
	}
	if start%2 != 0 {
		start++
	}

	return Window{Start: start, End: end}, true
}
