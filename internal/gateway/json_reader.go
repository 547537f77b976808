package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"ledger-sync/internal/domain"
)

// feedTransaction is the feed export wire shape. Amounts are decoded as
// json.Number and carried onward as strings, so no float conversion happens
// before the mapper's decimal parse.
type feedTransaction struct {
	ID          string      `json:"id"`
	AccountID   string      `json:"accountId"`
	Date        string      `json:"date"`
	Amount      json.Number `json:"amount"`
	Merchant    string      `json:"merchant"`
	Description string      `json:"description"`
	IsPending   bool        `json:"isPending"`
}

// ledgerRecord is the ledger snapshot wire shape. Date may be empty for
// records persisted without one; those simply never match date-based rules.
type ledgerRecord struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Amount     int64  `json:"amount"`
	PayeeName  string `json:"payee_name"`
	Account    string `json:"account"`
	Cleared    bool   `json:"cleared"`
	Notes      string `json:"notes"`
	ImportedID string `json:"imported_id"`
}

// FeedReader implements usecase.FeedRepository over a JSON feed export file.
type FeedReader struct{}

// NewFeedReader creates a new reader instance.
func NewFeedReader() *FeedReader {
	return &FeedReader{}
}

// GetFeedTransactions reads and parses a feed export file.
func (r *FeedReader) GetFeedTransactions(ctx context.Context, path string) ([]domain.SourceTransaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file %s: %w", path, err)
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.UseNumber()
	var raw []feedTransaction
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode feed file %s: %w", path, err)
	}

	transactions := make([]domain.SourceTransaction, 0, len(raw))
	for _, ft := range raw {
		date, err := time.Parse(time.DateOnly, ft.Date)
		if err != nil {
			return nil, fmt.Errorf("could not parse date %q in %s: %w", ft.Date, path, err)
		}
		transactions = append(transactions, domain.SourceTransaction{
			ID:          ft.ID,
			AccountID:   ft.AccountID,
			Date:        date,
			Amount:      ft.Amount.String(),
			Merchant:    ft.Merchant,
			Description: ft.Description,
			Pending:     ft.IsPending,
		})
	}
	return transactions, nil
}

// LedgerReader implements usecase.LedgerRepository over a JSON snapshot file.
type LedgerReader struct{}

// NewLedgerReader creates a new reader instance.
func NewLedgerReader() *LedgerReader {
	return &LedgerReader{}
}

// GetLedgerSnapshot reads and parses a ledger snapshot file.
func (r *LedgerReader) GetLedgerSnapshot(ctx context.Context, path string) ([]domain.LedgerRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger snapshot %s: %w", path, err)
	}
	defer file.Close()

	var raw []ledgerRecord
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode ledger snapshot %s: %w", path, err)
	}

	records := make([]domain.LedgerRecord, 0, len(raw))
	for _, lr := range raw {
		var date time.Time
		if lr.Date != "" {
			date, err = time.Parse(time.DateOnly, lr.Date)
			if err != nil {
				return nil, fmt.Errorf("could not parse date %q in %s: %w", lr.Date, path, err)
			}
		}
		records = append(records, domain.LedgerRecord{
			ID:         lr.ID,
			Date:       date,
			Amount:     lr.Amount,
			PayeeName:  lr.PayeeName,
			Account:    lr.Account,
			Cleared:    lr.Cleared,
			Notes:      lr.Notes,
			ImportedID: lr.ImportedID,
		})
	}
	return records, nil
}
