package gateway

import (
	"fmt"

	"github.com/spf13/viper"

	"ledger-sync/internal/domain"
)

// Config is the tool configuration loaded from a yaml file.
type Config struct {
	// Accounts maps feed accounts to ledger accounts, one-to-one.
	Accounts []domain.AccountMapping
	// LegacyFallback enables the permissive date+amount matching tier for
	// ledgers that predate synthetic keys.
	LegacyFallback bool
	// Mode selects the logger flavor ("debug" or anything else for prod).
	Mode string
}

// LoadConfig reads and validates the yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var accounts []domain.AccountMapping
	if err := v.UnmarshalKey("accounts", &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse account mappings in %s: %w", path, err)
	}
	for i, m := range accounts {
		if m.SourceAccountID == "" || m.LedgerAccountID == "" {
			return nil, fmt.Errorf("account mapping %d in %s is incomplete", i, path)
		}
	}

	return &Config{
		Accounts:       accounts,
		LegacyFallback: v.GetBool("matching.legacy_fallback"),
		Mode:           v.GetString("log.mode"),
	}, nil
}
