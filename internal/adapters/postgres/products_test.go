package postgres

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prism/internal/domain"
	"prism/internal/ports"
)

// flexibleSQLMatcher builds a regex that is insensitive to whitespace so the
// mock expectations survive query reformatting.
func flexibleSQLMatcher(sql string) string {
	trimmed := strings.TrimSpace(sql)
	return regexp.MustCompile(`\s+`).ReplaceAllString(regexp.QuoteMeta(trimmed), `\s+`)
}

var productColumns = []string{"id", "name", "category", "company_name", "description", "created_at"}

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *DB) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(mock, zap.NewNop())
}

func TestProductGet(t *testing.T) {
	mock, db := newMockDB(t)
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(flexibleSQLMatcher(`SELECT id, name, category, company_name, description, created_at FROM products WHERE id = $1`)).
		WithArgs("p1").
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow("p1", "Soap", "Skincare", "Acme", "A gentle bar.", created))

	got, err := db.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.Product{
		ID: "p1", Name: "Soap", Category: "Skincare", CompanyName: "Acme",
		Description: "A gentle bar.", CreatedAt: created,
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetNotFound(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectQuery(flexibleSQLMatcher(`SELECT id, name, category, company_name, description, created_at FROM products WHERE id = $1`)).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := db.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCreate(t *testing.T) {
	mock, db := newMockDB(t)
	created := time.Now().UTC()

	mock.ExpectQuery(flexibleSQLMatcher(`INSERT INTO products (name, category, company_name, description) VALUES ($1, $2, $3, $4) RETURNING id, name, category, company_name, description, created_at`)).
		WithArgs("Soap", "Skincare", "Acme", "A gentle bar.").
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow("p1", "Soap", "Skincare", "Acme", "A gentle bar.", created))

	got, err := db.Create(context.Background(), domain.NewProduct{
		Name: "Soap", Category: "Skincare", CompanyName: "Acme", Description: "A gentle bar.",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductList(t *testing.T) {
	mock, db := newMockDB(t)
	now := time.Now().UTC()

	mock.ExpectQuery(flexibleSQLMatcher(`SELECT id, name, category, company_name, description, created_at FROM products ORDER BY created_at DESC`)).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow("p2", "Shampoo", "Haircare", "Acme", "d2", now).
			AddRow("p1", "Soap", "Skincare", "Acme", "d1", now.Add(-time.Hour)))

	got, err := db.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductListEmpty(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectQuery(flexibleSQLMatcher(`SELECT id, name, category, company_name, description, created_at FROM products ORDER BY created_at DESC`)).
		WillReturnRows(pgxmock.NewRows(productColumns))

	got, err := db.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got, "an empty catalogue serializes as [], not null")
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdateNotFound(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectQuery(flexibleSQLMatcher(`UPDATE products SET name = $2, category = $3, company_name = $4, description = $5 WHERE id = $1 RETURNING id, name, category, company_name, description, created_at`)).
		WithArgs("missing", "Soap", "Skincare", "Acme", "d").
		WillReturnError(pgx.ErrNoRows)

	_, err := db.Update(context.Background(), "missing", domain.NewProduct{
		Name: "Soap", Category: "Skincare", CompanyName: "Acme", Description: "d",
	})
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDelete(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectExec(flexibleSQLMatcher(`DELETE FROM products WHERE id = $1`)).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, db.Delete(context.Background(), "p1"))

	mock.ExpectExec(flexibleSQLMatcher(`DELETE FROM products WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, db.Delete(context.Background(), "missing"), ports.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetOtherErrorPropagates(t *testing.T) {
	mock, db := newMockDB(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(flexibleSQLMatcher(`SELECT id, name, category, company_name, description, created_at FROM products WHERE id = $1`)).
		WithArgs("p1").
		WillReturnError(dbErr)

	_, err := db.Get(context.Background(), "p1")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ports.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
