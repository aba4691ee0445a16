package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"prism/internal/domain"
	"prism/internal/ports"
)

// ReportRepository

func (db *DB) Save(ctx context.Context, r domain.NewReport) (domain.StoredReport, error) {
	reportData := r.ReportData
	if len(reportData) == 0 {
		reportData = []byte("{}")
	}
	var out domain.StoredReport
	err := db.pool.QueryRow(ctx, `
		INSERT INTO reports (product_id, report_data, transparency_score)
		VALUES ($1, $2, $3)
		RETURNING id, product_id, report_data, transparency_score, created_at
	`, r.ProductID, reportData, r.TransparencyScore).
		Scan(&out.ID, &out.ProductID, &out.ReportData, &out.TransparencyScore, &out.CreatedAt)
	return out, err
}

func (db *DB) GetByProduct(ctx context.Context, productID string) (domain.StoredReport, error) {
	var out domain.StoredReport
	err := db.pool.QueryRow(ctx, `
		SELECT id, product_id, report_data, transparency_score, created_at
		FROM reports
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, productID).
		Scan(&out.ID, &out.ProductID, &out.ReportData, &out.TransparencyScore, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return out, ports.ErrNotFound
	}
	return out, err
}
