package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ledger-sync/internal/domain"
)

// merchantSlugMax bounds the slug component of synthetic keys. Two long
// merchant names sharing a 20-character prefix collide; the format is fixed
// for compatibility with previously persisted keys.
const merchantSlugMax = 20

// ErrUnmappedAccount is returned when a feed transaction references an
// account with no configured ledger counterpart.
var ErrUnmappedAccount = errors.New("no ledger account mapped for source account")

// MappingError describes a per-record mapping failure. Failures are local to
// one record and never abort a batch.
type MappingError struct {
	SourceID string
	Field    string
	Reason   string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("cannot map transaction %s: %s: %s", e.SourceID, e.Field, e.Reason)
}

// Mapper converts feed transactions into ledger record candidates.
type Mapper struct {
	accounts map[string]string // source account id -> ledger account id
	log      *zap.Logger
}

// New builds a Mapper from the configured account mappings.
func New(mappings []domain.AccountMapping, log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	accounts := make(map[string]string, len(mappings))
	for _, m := range mappings {
		accounts[m.SourceAccountID] = m.LedgerAccountID
	}
	return &Mapper{accounts: accounts, log: log}
}

// Map converts one feed transaction into a ledger record candidate.
//
// Provisional transactions have no stable feed id yet, so their importedId is
// the synthetic content-derived form; settled transactions reuse the feed id.
func (m *Mapper) Map(src domain.SourceTransaction) (domain.LedgerRecord, error) {
	ledgerAccount, ok := m.accounts[src.AccountID]
	if !ok {
		return domain.LedgerRecord{}, fmt.Errorf("account %q: %w", src.AccountID, ErrUnmappedAccount)
	}

	minor, err := AmountToMinorUnits(src.Amount)
	if err != nil {
		return domain.LedgerRecord{}, &MappingError{SourceID: src.ID, Field: "amount", Reason: err.Error()}
	}

	rec := domain.LedgerRecord{
		Date:      src.Date,
		Amount:    minor,
		PayeeName: src.Merchant,
		Account:   ledgerAccount,
		Cleared:   src.State() == domain.StateSettled,
		Notes:     src.Description,
	}

	switch src.State() {
	case domain.StateProvisional:
		rec.Notes = domain.PendingMarker + src.Description
		rec.ImportedID = domain.PendingIDPrefix + ContentKey(ledgerAccount, src.Date, minor, src.Merchant)
	case domain.StateSettled:
		rec.ImportedID = domain.SettledIDPrefix + src.ID
	}
	return rec, nil
}

// MapAll maps a batch of feed transactions, dropping records that fail and
// reporting every drop as a diagnostic. A failing record never aborts the
// batch.
func (m *Mapper) MapAll(sources []domain.SourceTransaction) ([]domain.LedgerRecord, []domain.SkippedRecord) {
	mapped := make([]domain.LedgerRecord, 0, len(sources))
	skipped := make([]domain.SkippedRecord, 0)
	for _, src := range sources {
		rec, err := m.Map(src)
		if err != nil {
			m.log.Warn("skipping feed transaction",
				zap.String("source_id", src.ID),
				zap.String("account_id", src.AccountID),
				zap.Error(err))
			skipped = append(skipped, domain.SkippedRecord{
				SourceID:  src.ID,
				AccountID: src.AccountID,
				Reason:    err.Error(),
			})
			continue
		}
		mapped = append(mapped, rec)
	}
	return mapped, skipped
}

// AmountToMinorUnits converts a decimal currency string into integer minor
// units. Decimal arithmetic keeps values like 19.99 exact; a naive float
// multiply can land on 1998.9999999999998.
func AmountToMinorUnits(amount string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

// MerchantSlug normalizes merchant text for synthetic keys: lower-cased,
// [a-z0-9] only, truncated to 20 characters.
func MerchantSlug(merchant string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(merchant) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == merchantSlugMax {
				break
			}
		}
	}
	return b.String()
}

// ContentKey derives the content portion of a synthetic key from the four
// fields a provisional record and its settled counterpart must share. The
// account here is the ledger account, so the reconciliation engine can
// recompute the key from ledger record fields alone.
func ContentKey(account string, date time.Time, amountMinor int64, payee string) string {
	return account + "_" + date.Format(time.DateOnly) + "_" + strconv.FormatInt(amountMinor, 10) + "_" + MerchantSlug(payee)
}
