package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stbaker/biztime/internal/company"
	"github.com/stbaker/biztime/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const pgForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanInvoice reads an invoice row from the scanner.
// Expected column order: id, comp_code, amt, paid, add_date, paid_date
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var (
		inv      invoice.Invoice
		paidDate sql.NullTime
	)

	if err := s.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate); err != nil {
		return nil, err
	}

	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	return &inv, nil
}

const selectInvoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, comp_code FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		var inv invoice.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invs, nil
}

// GetInvoice fetches the invoice joined with its owning company. The
// inner join means an invoice whose company row is gone reads as absent.
func (s *Store) GetInvoice(ctx context.Context, id int64) (*invoice.Invoice, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices i
		JOIN companies c ON i.comp_code = c.code
		WHERE i.id = $1
	`

	var (
		inv      invoice.Invoice
		comp     company.Company
		paidDate sql.NullTime
		desc     sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate,
		&comp.Code, &comp.Name, &desc,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	if desc.Valid {
		comp.Description = &desc.String
	}

	inv.Company = &comp

	return &inv, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + selectInvoiceColumns

	var paidDate sql.NullTime

	err := s.db.QueryRowContext(ctx, query, inv.CompCode, inv.Amt).
		Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return invoice.ErrUnknownCompany
		}

		return fmt.Errorf("creating invoice: %w", err)
	}

	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	return nil
}

// UpdateInvoice reads the stored paid_date, derives the next one, and
// writes amt, paid and paid_date, all inside a single transaction. The
// row lock keeps a concurrent update from slipping between the read and
// the write.
func (s *Store) UpdateInvoice(ctx context.Context, id int64, amt float64, paid bool) (*invoice.Invoice, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning update transaction: %w", err)
	}
	defer tx.Rollback()

	var current sql.NullTime

	err = tx.QueryRowContext(ctx,
		`SELECT paid_date FROM invoices WHERE id = $1 FOR UPDATE`, id,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("reading paid date: %w", err)
	}

	var currentPaidDate *time.Time
	if current.Valid {
		currentPaidDate = &current.Time
	}

	paidDate := invoice.NextPaidDate(currentPaidDate, paid, time.Now())

	query := `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING ` + selectInvoiceColumns

	inv, err := scanInvoice(tx.QueryRowContext(ctx, query, amt, paid, paidDate, id))
	if err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing update: %w", err)
	}

	return inv, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if affected == 0 {
		return invoice.ErrNotFound
	}

	return nil
}
