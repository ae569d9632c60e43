package repository

import (
	"context"

	"github.com/phishguard/phishguard-api/internal/domain/entity"
)

// ScanRepository defines the interface for scan persistence and the reads
// that back history and analytics.
type ScanRepository interface {
	Create(ctx context.Context, s *entity.Scan) error
	// ListByUser returns the user's scans ordered by creation time descending.
	ListByUser(ctx context.Context, userID string) ([]entity.Scan, error)
	// CountAll returns the exact number of scan records.
	CountAll(ctx context.Context) (int64, error)
	// Sample returns up to limit rows in the store's default order. Analytics
	// computes its phishing split over this bounded sample, not the full table.
	Sample(ctx context.Context, limit int) ([]entity.Scan, error)
}
