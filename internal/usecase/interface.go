package usecase

import (
	"context"

	"ledger-sync/internal/domain"
)

// FeedRepository fetches transactions from the external feed export.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go FeedRepository LedgerRepository
type FeedRepository interface {
	GetFeedTransactions(ctx context.Context, path string) ([]domain.SourceTransaction, error)
}

// LedgerRepository fetches the current snapshot of the target ledger.
type LedgerRepository interface {
	GetLedgerSnapshot(ctx context.Context, path string) ([]domain.LedgerRecord, error)
}
