package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ledger-sync/internal/domain"
	"ledger-sync/internal/mapper"
	"ledger-sync/internal/recon"
)

// SyncUseCase orchestrates one reconciliation run: map the feed batch into
// ledger record candidates, then classify them against the ledger snapshot.
// The classified batch is handed to the persistence layer by the caller.
type SyncUseCase struct {
	feeds      FeedRepository
	ledgers    LedgerRepository
	mapper     *mapper.Mapper
	engineOpts []recon.Option
	log        *zap.Logger
}

// NewSyncUseCase creates a new instance of the usecase.
func NewSyncUseCase(feeds FeedRepository, ledgers LedgerRepository, m *mapper.Mapper, log *zap.Logger, engineOpts ...recon.Option) *SyncUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SyncUseCase{
		feeds:      feeds,
		ledgers:    ledgers,
		mapper:     m,
		engineOpts: engineOpts,
		log:        log,
	}
}

// Sync performs the full run and assembles the report.
func (uc *SyncUseCase) Sync(ctx context.Context, feedPath, ledgerPath string) (*domain.SyncReport, error) {
	sources, err := uc.feeds.GetFeedTransactions(ctx, feedPath)
	if err != nil {
		return nil, fmt.Errorf("could not get feed transactions: %w", err)
	}

	existing, err := uc.ledgers.GetLedgerSnapshot(ctx, ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger snapshot: %w", err)
	}

	mapped, skipped := uc.mapper.MapAll(sources)

	engine := recon.NewEngine(existing, uc.engineOpts...)
	classified := engine.ClassifyAll(mapped)

	report := &domain.SyncReport{
		RunID: uuid.NewString(),
		Summary: domain.SyncSummary{
			TotalFeedTransactions: len(sources),
			TotalLedgerRecords:    len(existing),
			Mapped:                len(mapped),
			Skipped:               len(skipped),
			Duplicates:            recon.CountDuplicates(classified),
		},
		Skipped: skipped,
		Records: classified,
	}
	report.Summary.New = report.Summary.Mapped - report.Summary.Duplicates
	for _, rec := range classified {
		if rec.IsDuplicate && rec.ShouldReplace {
			report.Summary.Replacements++
		}
	}

	uc.log.Info("sync run classified",
		zap.String("run_id", report.RunID),
		zap.Int("mapped", report.Summary.Mapped),
		zap.Int("skipped", report.Summary.Skipped),
		zap.Int("new", report.Summary.New),
		zap.Int("duplicates", report.Summary.Duplicates),
		zap.Int("replacements", report.Summary.Replacements))

	return report, nil
}
