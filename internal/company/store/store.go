package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stbaker/biztime/internal/company"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Postgres error codes classified into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func (s *Store) ListCompanies(ctx context.Context) ([]*company.Company, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code, name FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*company.Company

	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}

	return companies, nil
}

// GetCompany fetches the company row and, independently, the ids of its
// invoices. A company with no invoices yields an empty id list.
func (s *Store) GetCompany(ctx context.Context, code string) (*company.Company, error) {
	var (
		c    company.Company
		desc sql.NullString
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`, code,
	).Scan(&c.Code, &c.Name, &desc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, company.ErrNotFound
		}

		return nil, fmt.Errorf("getting company: %w", err)
	}

	if desc.Valid {
		c.Description = &desc.String
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, fmt.Errorf("listing company invoices: %w", err)
	}
	defer rows.Close()

	c.InvoiceIDs = []int64{}

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning invoice id: %w", err)
		}

		c.InvoiceIDs = append(c.InvoiceIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice id rows: %w", err)
	}

	return &c, nil
}

func (s *Store) CreateCompany(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`

	var desc sql.NullString

	err := s.db.QueryRowContext(ctx, query, c.Code, c.Name, c.Description).
		Scan(&c.Code, &c.Name, &desc)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return company.ErrCodeTaken
		}

		return fmt.Errorf("creating company: %w", err)
	}

	c.Description = nil
	if desc.Valid {
		c.Description = &desc.String
	}

	return nil
}

func (s *Store) UpdateCompany(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description
	`

	var desc sql.NullString

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Description, c.Code).
		Scan(&c.Code, &c.Name, &desc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return company.ErrNotFound
		}

		return fmt.Errorf("updating company: %w", err)
	}

	c.Description = nil
	if desc.Valid {
		c.Description = &desc.String
	}

	return nil
}

func (s *Store) DeleteCompany(ctx context.Context, code string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if affected == 0 {
		return company.ErrNotFound
	}

	return nil
}
