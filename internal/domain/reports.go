package domain

// SkippedRecord describes a feed transaction dropped during mapping. Drops
// are returned alongside the mapped batch so callers can assert on them
// instead of scraping logs.
type SkippedRecord struct {
	SourceID  string `json:"source_id"`
	AccountID string `json:"account_id"`
	Reason    string `json:"reason"`
}

// SyncSummary provides high-level statistics of a sync run.
type SyncSummary struct {
	TotalFeedTransactions int `json:"total_feed_transactions"`
	TotalLedgerRecords    int `json:"total_ledger_records"`
	Mapped                int `json:"mapped"`
	Skipped               int `json:"skipped"`
	New                   int `json:"new"`
	Duplicates            int `json:"duplicates"`
	Replacements          int `json:"replacements"`
}

// SyncReport is the top-level structure for the final JSON output.
type SyncReport struct {
	RunID   string          `json:"run_id"`
	Summary SyncSummary     `json:"summary"`
	Skipped []SkippedRecord `json:"skipped_records"`
	Records []LedgerRecord  `json:"records"`
}
