// Package store provides persistence for priced contracts and built
// strategies, so past analyses can be reviewed from the journal command.
package store

import (
	"context"

	"options-desk/internal/models"
)

// JournalStore defines the interface for analysis persistence.
type JournalStore interface {
	SaveAnalysis(ctx context.Context, a *models.StrategyAnalysis) error
	ListAnalyses(ctx context.Context, limit int) ([]models.StrategyAnalysis, error)
	SaveSnapshot(ctx context.Context, s *models.ContractSnapshot) error
	ListSnapshots(ctx context.Context, limit int) ([]models.ContractSnapshot, error)
	Close() error
}
