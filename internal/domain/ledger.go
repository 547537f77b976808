package domain

import (
	"strings"
	"time"
)

// Wire prefixes for the two importedId forms. These must reproduce the
// format of previously persisted data exactly.
const (
	PendingIDPrefix = "pending_"
	SettledIDPrefix = "src_"
)

// PendingMarker prefixes the notes of records mapped from provisional
// transactions. Legacy matching strips it before comparing payee text.
const PendingMarker = "[PENDING] "

// LedgerRecord is a transaction in the target-ledger shape. Amount is in
// integer minor currency units (cents).
type LedgerRecord struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Amount     int64     `json:"amount"`
	PayeeName  string    `json:"payee_name"`
	Account    string    `json:"account"`
	Cleared    bool      `json:"cleared"`
	Notes      string    `json:"notes"`
	ImportedID string    `json:"imported_id"`

	// Classification results, attached by the reconciliation engine.
	IsDuplicate   bool   `json:"is_duplicate"`
	DuplicateOfID string `json:"duplicate_of_id,omitempty"`
	ShouldReplace bool   `json:"should_replace,omitempty"`
}

// HasSyntheticID reports whether the record's importedId is the synthetic
// pending form derived from transaction content.
func (r LedgerRecord) HasSyntheticID() bool {
	return strings.HasPrefix(r.ImportedID, PendingIDPrefix)
}
