package domain

// Verdict is the engine's classification of one candidate record.
type Verdict struct {
	Duplicate     bool   `json:"duplicate"`
	DuplicateOfID string `json:"duplicate_of_id,omitempty"`
	ShouldReplace bool   `json:"should_replace,omitempty"`
}

// NewRecordVerdict classifies a candidate as a record not seen before.
func NewRecordVerdict() Verdict {
	return Verdict{}
}

// DuplicateVerdict classifies a candidate as a duplicate of an existing
// record. replace signals the persistence layer to overwrite and clear the
// referenced provisional record instead of inserting.
func DuplicateVerdict(ofID string, replace bool) Verdict {
	return Verdict{Duplicate: true, DuplicateOfID: ofID, ShouldReplace: replace}
}
