package models

// WordListResponse carries the verbatim contents of the two dictionary
// files. Built fresh on every request and discarded after writing.
type WordListResponse struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// ErrorResponse is the error envelope for all non-2xx JSON responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SolveRequest is a hand of letters to arrange into a valid board.
type SolveRequest struct {
	// Letters is the hand, e.g. "BANANAGRAMS". Case-insensitive; anything
	// outside A-Z is rejected.
	Letters string `json:"letters"`
	// UseLongDictionary selects the full dictionary instead of the short one.
	UseLongDictionary bool `json:"useLongDictionary"`
	// FilterLettersOnBoard caps how many already-played letters a candidate
	// word may reuse when re-filtering between plies. 0 means the configured
	// default.
	FilterLettersOnBoard int `json:"filterLettersOnBoard,omitempty"`
	// MaxWordsToCheck bounds the search. 0 means the configured default.
	MaxWordsToCheck int `json:"maxWordsToCheck,omitempty"`
}
