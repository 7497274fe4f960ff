package constant

const (
	// SessionSummaryNew is the sentinel a fresh session carries until its
	// first message names it.
	SessionSummaryNew = "New Chat"

	// SessionSummaryMaxLen caps the summary taken from the first message.
	SessionSummaryMaxLen = 50
)
