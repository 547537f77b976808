package recon

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"ledger-sync/internal/domain"
	"ledger-sync/internal/mapper"
)

// Engine classifies candidate ledger records against a snapshot of existing
// records. Both indexes are built once at construction; the snapshot is never
// mutated. Concurrent runs must each build their own Engine from their own
// snapshot.
type Engine struct {
	byImportedID        map[string]domain.LedgerRecord
	pendingByContentKey map[string]domain.LedgerRecord
	existing            []domain.LedgerRecord // retained for the legacy fallback scan
	legacyFallback      bool
	log                 *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLegacyFallback enables the permissive date+amount fallback tier needed
// for ledgers imported before synthetic keys existed. Off by default: the
// fallback can suppress genuinely new transactions as duplicates.
func WithLegacyFallback() Option {
	return func(e *Engine) { e.legacyFallback = true }
}

// WithLogger attaches a logger for classification tracing.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine indexes the existing ledger snapshot.
func NewEngine(existing []domain.LedgerRecord, opts ...Option) *Engine {
	e := &Engine{
		byImportedID:        make(map[string]domain.LedgerRecord, len(existing)),
		pendingByContentKey: make(map[string]domain.LedgerRecord),
		existing:            existing,
		log:                 zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, rec := range existing {
		if rec.ImportedID == "" {
			continue
		}
		e.byImportedID[rec.ImportedID] = rec
		if rec.HasSyntheticID() {
			key := strings.TrimPrefix(rec.ImportedID, domain.PendingIDPrefix)
			e.pendingByContentKey[key] = rec
		}
	}
	return e
}

// Classify decides whether a candidate is new, an exact duplicate, or the
// settled form of an existing provisional record. Rules run in strict
// priority order; the first match wins. Classification always produces a
// verdict: a candidate missing a field a rule needs simply fails that rule.
func (e *Engine) Classify(candidate domain.LedgerRecord) domain.Verdict {
	if candidate.ImportedID == "" {
		return domain.NewRecordVerdict()
	}

	if match, ok := e.byImportedID[candidate.ImportedID]; ok {
		return domain.DuplicateVerdict(match.ID, false)
	}

	if match, ok := e.matchSettlement(candidate); ok {
		e.log.Debug("linked settled record to provisional predecessor",
			zap.String("imported_id", candidate.ImportedID),
			zap.String("provisional_id", match.ID))
		return domain.DuplicateVerdict(match.ID, true)
	}

	if e.legacyFallback {
		if match, ok := e.matchLegacy(candidate); ok {
			return domain.DuplicateVerdict(match.ID, !match.Cleared)
		}
	}

	return domain.NewRecordVerdict()
}

// matchSettlement links a settled candidate to the provisional record it
// supersedes. The feed-assigned settled id bears no lexical relation to the
// synthetic provisional id, so the only sound link is content equality on
// account, date, amount and payee, recomputed from raw fields on both sides.
// Payee equality is exact and case-sensitive; the raw-field check also keeps
// slug-truncation collisions from surviving the key lookup.
func (e *Engine) matchSettlement(candidate domain.LedgerRecord) (domain.LedgerRecord, bool) {
	if candidate.HasSyntheticID() || candidate.Date.IsZero() {
		return domain.LedgerRecord{}, false
	}
	key := mapper.ContentKey(candidate.Account, candidate.Date, candidate.Amount, candidate.PayeeName)
	match, ok := e.pendingByContentKey[key]
	if !ok {
		return domain.LedgerRecord{}, false
	}
	if match.Account != candidate.Account ||
		!sameDay(match.Date, candidate.Date) ||
		match.Amount != candidate.Amount ||
		match.PayeeName != candidate.PayeeName {
		return domain.LedgerRecord{}, false
	}
	return match, true
}

// matchLegacy is the permissive pre-synthetic-key tier: a linear scan on
// date+amount, disambiguated by payee text with the pending marker stripped.
// The last tier matches on date+amount alone when either side has no payee,
// a documented source of false positives. That is why the whole tier is
// opt-in.
func (e *Engine) matchLegacy(candidate domain.LedgerRecord) (domain.LedgerRecord, bool) {
	if candidate.Date.IsZero() {
		return domain.LedgerRecord{}, false
	}
	candPayee := stripPendingMarker(candidate.PayeeName)
	candMarked := hasPendingMarker(candidate.PayeeName) || hasPendingMarker(candidate.Notes)

	for _, rec := range e.existing {
		if rec.Date.IsZero() || !sameDay(rec.Date, candidate.Date) || rec.Amount != candidate.Amount {
			continue
		}
		recPayee := stripPendingMarker(rec.PayeeName)
		recMarked := hasPendingMarker(rec.PayeeName) || hasPendingMarker(rec.Notes)

		switch {
		case recMarked && !candMarked && (recPayee == candPayee || recPayee == "" || candPayee == ""):
			return rec, true
		case recPayee != "" && recPayee == candPayee:
			return rec, true
		case recPayee == "" || candPayee == "":
			return rec, true
		}
	}
	return domain.LedgerRecord{}, false
}

// ClassifyAll annotates a copy of each candidate with its verdict. The
// existing snapshot is not modified.
func (e *Engine) ClassifyAll(candidates []domain.LedgerRecord) []domain.LedgerRecord {
	out := make([]domain.LedgerRecord, len(candidates))
	for i, c := range candidates {
		v := e.Classify(c)
		c.IsDuplicate = v.Duplicate
		c.DuplicateOfID = v.DuplicateOfID
		c.ShouldReplace = v.ShouldReplace
		out[i] = c
	}
	return out
}

// CountDuplicates counts the duplicates in an already-classified batch.
func CountDuplicates(classified []domain.LedgerRecord) int {
	count := 0
	for _, rec := range classified {
		if rec.IsDuplicate {
			count++
		}
	}
	return count
}

// FilterUnique returns the records of an already-classified batch that were
// classified as new.
func FilterUnique(classified []domain.LedgerRecord) []domain.LedgerRecord {
	unique := make([]domain.LedgerRecord, 0, len(classified))
	for _, rec := range classified {
		if !rec.IsDuplicate {
			unique = append(unique, rec)
		}
	}
	return unique
}

// FilterDuplicates returns the records of an already-classified batch that
// were classified as duplicates.
func FilterDuplicates(classified []domain.LedgerRecord) []domain.LedgerRecord {
	dups := make([]domain.LedgerRecord, 0)
	for _, rec := range classified {
		if rec.IsDuplicate {
			dups = append(dups, rec)
		}
	}
	return dups
}

func hasPendingMarker(s string) bool {
	return strings.HasPrefix(s, domain.PendingMarker)
}

func stripPendingMarker(s string) string {
	return strings.TrimPrefix(s, domain.PendingMarker)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
