package domain

import "unicode/utf16"

// MaxTextLength bounds the input text, in UTF-16 code units.
const MaxTextLength = 10_000

type SummaryRequest struct {
	Text *string `json:"text"`
}

type SummaryResult struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"originalLength"`
	SummaryLength  int    `json:"summaryLength"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// TextLength counts s the way a browser does for String.length, so the
// bound and the reported statistics agree with the client view.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func NewSummaryResult(text, summary string) SummaryResult {
	return SummaryResult{
		Summary:        summary,
		OriginalLength: TextLength(text),
		SummaryLength:  TextLength(summary),
	}
}
