package domain

import "time"

// HesudharCorrection is one spelling fix applied by the hesudhar service.
// It only lives for one workflow session.
type HesudharCorrection struct {
	OriginalWord  string
	CorrectedWord string
	Position      int
}

// HesudharResult is the response of the spelling-correction service.
type HesudharResult struct {
	CorrectedText string
	Corrections   []HesudharCorrection
}

// RomanMapping pairs a Sindhi word with its roman-script rendering.
type RomanMapping struct {
	SindhiWord string
	RomanWord  string
}

// RomanizeResult is the response of the romanization service.
type RomanizeResult struct {
	RomanizedText string
	Mappings      []RomanMapping
}

// RomanWord is a persisted romanization dictionary entry. SyncedAt is nil
// until the entry has been merged into the lookup artifact.
type RomanWord struct {
	ID        int64
	WordSD    string
	WordRoman string
	SyncedAt  *time.Time
	CreatedAt time.Time
}

// IsSynced reports whether the entry is already in the lookup artifact.
func (w *RomanWord) IsSynced() bool {
	return w.SyncedAt != nil
}
