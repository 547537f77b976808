package domain

import "time"

// TransactionState tags the two lifecycle states the feed reports a
// transaction in. The feed's stable identifier changes between them, which is
// why settlement matching cannot rely on ids alone.
type TransactionState string

const (
	StateProvisional TransactionState = "PROVISIONAL"
	StateSettled     TransactionState = "SETTLED"
)

// SourceTransaction represents a transaction as reported by the external feed.
// Amount is kept as the feed's decimal string; the mapper converts it to
// integer minor units without going through a float.
type SourceTransaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Date        time.Time `json:"date"`
	Amount      string    `json:"amount"`
	Merchant    string    `json:"merchant"`
	Description string    `json:"description"`
	Pending     bool      `json:"isPending"`
}

// State returns the lifecycle variant of the transaction. Matching rules
// switch on this rather than inspecting id prefixes.
func (t SourceTransaction) State() TransactionState {
	if t.Pending {
		return StateProvisional
	}
	return StateSettled
}

// AccountMapping pairs a feed account with its ledger account, one-to-one.
// Mappings are loaded from configuration; the mapper only reads them.
type AccountMapping struct {
	SourceAccountID string `json:"source_account_id" mapstructure:"source"`
	LedgerAccountID string `json:"ledger_account_id" mapstructure:"ledger"`
}
