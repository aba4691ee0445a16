package domain

import (
	"encoding/json"
	"time"
)

// StoredReport is a persisted record of a generated report's metadata, kept
// independent of the render path. The payloads are stored as-is (jsonb) and
// round-trip unmodified.
type StoredReport struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	ReportData        json.RawMessage `json:"report_data"`
	TransparencyScore json.RawMessage `json:"transparency_score"`
	CreatedAt         time.Time       `json:"created_at"`
}

// NewReport carries the caller-supplied fields of a report record.
type NewReport struct {
	ProductID         string          `json:"product_id"`
	ReportData        json.RawMessage `json:"report_data"`
	TransparencyScore json.RawMessage `json:"transparency_score"`
}
