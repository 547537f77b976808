package recon_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-sync/internal/domain"
	"ledger-sync/internal/recon"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// provisional builds an existing record in the shape the mapper produces for
// a pending transaction.
func provisional(id, account, day string, amount int64, payee string) domain.LedgerRecord {
	return domain.LedgerRecord{
		ID:         id,
		Date:       date(day),
		Amount:     amount,
		PayeeName:  payee,
		Account:    account,
		Cleared:    false,
		Notes:      domain.PendingMarker + "card purchase",
		ImportedID: "pending_A1_2024-01-05_1999_starbucks",
	}
}

func TestEngine_Classify(t *testing.T) {
	existing := []domain.LedgerRecord{
		{
			ID:         "led-1",
			Date:       date("2024-01-05"),
			Amount:     1999,
			PayeeName:  "Starbucks",
			Account:    "A1",
			Notes:      domain.PendingMarker + "card purchase",
			ImportedID: "pending_A1_2024-01-05_1999_starbucks",
		},
		{
			ID:         "led-2",
			Date:       date("2024-01-03"),
			Amount:     500,
			PayeeName:  "Grocer",
			Account:    "A1",
			Cleared:    true,
			ImportedID: "src_777",
		},
	}

	tests := []struct {
		name      string
		candidate domain.LedgerRecord
		want      domain.Verdict
	}{
		{
			name:      "no importedId is always new",
			candidate: domain.LedgerRecord{Date: date("2024-01-03"), Amount: 500, PayeeName: "Grocer", Account: "A1"},
			want:      domain.NewRecordVerdict(),
		},
		{
			name: "exact importedId hit",
			candidate: domain.LedgerRecord{
				Date: date("2024-01-03"), Amount: 500, PayeeName: "Grocer", Account: "A1",
				ImportedID: "src_777",
			},
			want: domain.DuplicateVerdict("led-2", false),
		},
		{
			name: "exact hit wins even when content differs",
			candidate: domain.LedgerRecord{
				Date: date("2024-02-20"), Amount: 123456, PayeeName: "Somewhere Else", Account: "A2",
				ImportedID: "src_777",
			},
			want: domain.DuplicateVerdict("led-2", false),
		},
		{
			name: "settled candidate supersedes provisional record",
			candidate: domain.LedgerRecord{
				Date: date("2024-01-05"), Amount: 1999, PayeeName: "Starbucks", Account: "A1",
				Cleared: true, ImportedID: "src_999",
			},
			want: domain.DuplicateVerdict("led-1", true),
		},
		{
			name: "no settlement across accounts",
			candidate: domain.LedgerRecord{
				Date: date("2024-01-05"), Amount: 1999, PayeeName: "Starbucks", Account: "A2",
				Cleared: true, ImportedID: "src_999",
			},
			want: domain.NewRecordVerdict(),
		},
		{
			name: "no settlement on amount drift",
			candidate: domain.LedgerRecord{
				Date: date("2024-01-05"), Amount: 2000, PayeeName: "Starbucks", Account: "A1",
				Cleared: true, ImportedID: "src_999",
			},
			want: domain.NewRecordVerdict(),
		},
		{
			name: "payee comparison is case-sensitive",
			candidate: domain.LedgerRecord{
				Date: date("2024-01-05"), Amount: 1999, PayeeName: "STARBUCKS", Account: "A1",
				Cleared: true, ImportedID: "src_999",
			},
			want: domain.NewRecordVerdict(),
		},
		{
			name: "provisional candidate never settlement-matches",
			candidate: domain.LedgerRecord{
				Date: date("2024-01-05"), Amount: 1999, PayeeName: "Starbucks", Account: "A1",
				ImportedID: "pending_A1_2024-01-05_1999_starbucksx",
			},
			want: domain.NewRecordVerdict(),
		},
		{
			name: "missing date skips content-key rule",
			candidate: domain.LedgerRecord{
				Amount: 1999, PayeeName: "Starbucks", Account: "A1",
				Cleared: true, ImportedID: "src_999",
			},
			want: domain.NewRecordVerdict(),
		},
	}

	engine := recon.NewEngine(existing)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Classify(tt.candidate))
		})
	}
}

// A truncated merchant slug can collide across distinct merchants; the raw
// payee comparison must keep the collision from producing a settlement match.
func TestEngine_Classify_SlugCollisionIsNotSettlement(t *testing.T) {
	existing := []domain.LedgerRecord{
		{
			ID:         "led-9",
			Date:       date("2024-03-01"),
			Amount:     4200,
			PayeeName:  "AmazonMarketplaceServicesFeesLLC",
			Account:    "A1",
			ImportedID: "pending_A1_2024-03-01_4200_amazonmarketplaceser",
		},
	}
	engine := recon.NewEngine(existing)

	verdict := engine.Classify(domain.LedgerRecord{
		Date: date("2024-03-01"), Amount: 4200, Account: "A1",
		PayeeName: "AmazonMarketplaceServicesExtraLLC",
		Cleared:   true, ImportedID: "src_31337",
	})
	assert.Equal(t, domain.NewRecordVerdict(), verdict)

	verdict = engine.Classify(domain.LedgerRecord{
		Date: date("2024-03-01"), Amount: 4200, Account: "A1",
		PayeeName: "AmazonMarketplaceServicesFeesLLC",
		Cleared:   true, ImportedID: "src_31337",
	})
	assert.Equal(t, domain.DuplicateVerdict("led-9", true), verdict)
}

func TestEngine_LegacyFallback(t *testing.T) {
	existing := []domain.LedgerRecord{
		{
			// Pre-synthetic-key provisional record: marker lives in the payee.
			ID:        "old-1",
			Date:      date("2023-11-02"),
			Amount:    1500,
			PayeeName: domain.PendingMarker + "Coffee House",
			Account:   "A1",
		},
		{
			ID:        "old-2",
			Date:      date("2023-11-03"),
			Amount:    2500,
			PayeeName: "Bookstore",
			Account:   "A1",
			Cleared:   true,
		},
		{
			// No payee at all.
			ID:      "old-3",
			Date:    date("2023-11-04"),
			Amount:  900,
			Account: "A1",
		},
	}

	tests := []struct {
		name      string
		candidate domain.LedgerRecord
		want      domain.Verdict
	}{
		{
			name: "marker stripped payee match replaces uncleared record",
			candidate: domain.LedgerRecord{
				Date: date("2023-11-02"), Amount: 1500, PayeeName: "Coffee House",
				Cleared: true, ImportedID: "src_1",
			},
			want: domain.DuplicateVerdict("old-1", true),
		},
		{
			name: "equal payee match",
			candidate: domain.LedgerRecord{
				Date: date("2023-11-03"), Amount: 2500, PayeeName: "Bookstore",
				Cleared: true, ImportedID: "src_2",
			},
			want: domain.DuplicateVerdict("old-2", false),
		},
		{
			name: "date and amount alone when a side lacks a payee",
			candidate: domain.LedgerRecord{
				Date: date("2023-11-04"), Amount: 900, PayeeName: "Anything",
				Cleared: true, ImportedID: "src_3",
			},
			want: domain.DuplicateVerdict("old-3", true),
		},
		{
			name: "different payee and both present",
			candidate: domain.LedgerRecord{
				Date: date("2023-11-03"), Amount: 2500, PayeeName: "Toy Shop",
				Cleared: true, ImportedID: "src_4",
			},
			want: domain.NewRecordVerdict(),
		},
		{
			name: "amount mismatch",
			candidate: domain.LedgerRecord{
				Date: date("2023-11-02"), Amount: 1501, PayeeName: "Coffee House",
				Cleared: true, ImportedID: "src_5",
			},
			want: domain.NewRecordVerdict(),
		},
	}

	engine := recon.NewEngine(existing, recon.WithLegacyFallback())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Classify(tt.candidate))
		})
	}
}

func TestEngine_LegacyFallback_OffByDefault(t *testing.T) {
	existing := []domain.LedgerRecord{
		{
			ID:        "old-1",
			Date:      date("2023-11-02"),
			Amount:    1500,
			PayeeName: domain.PendingMarker + "Coffee House",
			Account:   "A1",
		},
	}
	engine := recon.NewEngine(existing)

	verdict := engine.Classify(domain.LedgerRecord{
		Date: date("2023-11-02"), Amount: 1500, PayeeName: "Coffee House",
		Cleared: true, ImportedID: "src_1",
	})
	assert.Equal(t, domain.NewRecordVerdict(), verdict)
}

func TestEngine_ClassifyAll(t *testing.T) {
	existing := []domain.LedgerRecord{
		provisional("led-1", "A1", "2024-01-05", 1999, "Starbucks"),
		{ID: "led-2", Date: date("2024-01-03"), Amount: 500, Account: "A1", Cleared: true, ImportedID: "src_777"},
	}
	candidates := []domain.LedgerRecord{
		{Date: date("2024-01-05"), Amount: 1999, PayeeName: "Starbucks", Account: "A1", Cleared: true, ImportedID: "src_999"},
		{Date: date("2024-01-03"), Amount: 500, Account: "A1", Cleared: true, ImportedID: "src_777"},
		{Date: date("2024-01-09"), Amount: 310, PayeeName: "Bakery", Account: "A1", Cleared: true, ImportedID: "src_1001"},
	}

	engine := recon.NewEngine(existing)
	classified := engine.ClassifyAll(candidates)

	require.Len(t, classified, 3)
	assert.True(t, classified[0].IsDuplicate)
	assert.Equal(t, "led-1", classified[0].DuplicateOfID)
	assert.True(t, classified[0].ShouldReplace)
	assert.True(t, classified[1].IsDuplicate)
	assert.False(t, classified[1].ShouldReplace)
	assert.False(t, classified[2].IsDuplicate)

	// Input candidates and the snapshot stay untouched.
	assert.False(t, candidates[0].IsDuplicate)
	assert.False(t, existing[0].IsDuplicate)

	// Re-running over the same snapshot yields identical verdicts.
	again := engine.ClassifyAll(candidates)
	assert.Equal(t, classified, again)

	assert.Equal(t, 2, recon.CountDuplicates(classified))
	unique := recon.FilterUnique(classified)
	require.Len(t, unique, 1)
	assert.Equal(t, "src_1001", unique[0].ImportedID)
	dups := recon.FilterDuplicates(classified)
	require.Len(t, dups, 2)
	assert.Equal(t, "src_999", dups[0].ImportedID)
}

func BenchmarkClassifyAll(b *testing.B) {
	existing := make([]domain.LedgerRecord, 0, 1000)
	for i := 0; i < 1000; i++ {
		existing = append(existing, domain.LedgerRecord{
			ID:         "led",
			Date:       date("2024-01-05"),
			Amount:     int64(i),
			PayeeName:  "Starbucks",
			Account:    "A1",
			ImportedID: "src_" + string(rune('a'+i%26)),
		})
	}
	candidates := []domain.LedgerRecord{
		{Date: date("2024-01-05"), Amount: 1999, PayeeName: "Starbucks", Account: "A1", Cleared: true, ImportedID: "src_999"},
	}

	engine := recon.NewEngine(existing)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.ClassifyAll(candidates)
	}
}

func TestEngine_EmptySnapshot(t *testing.T) {
	engine := recon.NewEngine(nil)
	verdict := engine.Classify(domain.LedgerRecord{
		Date: date("2024-01-05"), Amount: 1999, PayeeName: "Starbucks", Account: "A1",
		Cleared: true, ImportedID: "src_999",
	})
	assert.Equal(t, domain.NewRecordVerdict(), verdict)
}
