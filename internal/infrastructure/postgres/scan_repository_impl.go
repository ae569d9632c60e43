package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phishguard/phishguard-api/internal/domain/entity"
	"github.com/phishguard/phishguard-api/internal/domain/repository"
)

type ScanRepository struct {
	pool *pgxpool.Pool
}

func NewScanRepository(pool *pgxpool.Pool) *ScanRepository {
	return &ScanRepository{pool: pool}
}

func (r *ScanRepository) Create(ctx context.Context, s *entity.Scan) error {
	result, err := json.Marshal(s.Result)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO scans (user_id, input_type, content, result)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, s.UserID, s.InputType, s.Content, result)

	return row.Scan(&s.ID, &s.CreatedAt)
}

func (r *ScanRepository) ListByUser(ctx context.Context, userID string) ([]entity.Scan, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, input_type, content, result, created_at
		FROM scans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectScans(rows)
}

func (r *ScanRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM scans`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Sample reads up to limit rows without an explicit ORDER BY; analytics
// treats the result as an approximation of recent activity.
func (r *ScanRepository) Sample(ctx context.Context, limit int) ([]entity.Scan, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, input_type, content, result, created_at
		FROM scans
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectScans(rows)
}

func collectScans(rows pgx.Rows) ([]entity.Scan, error) {
	scans := []entity.Scan{}
	for rows.Next() {
		var s entity.Scan
		var result []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.InputType, &s.Content, &result, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(result, &s.Result); err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return scans, nil
}

var _ repository.ScanRepository = (*ScanRepository)(nil)
