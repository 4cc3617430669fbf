package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
)

// PostgresInquiryRepository implements InquiryRepository on database/sql
type PostgresInquiryRepository struct {
	db *sql.DB
}

// NewPostgresInquiryRepository creates a new PostgreSQL inquiry repository
func NewPostgresInquiryRepository(db *sql.DB) *PostgresInquiryRepository {
	return &PostgresInquiryRepository{db: db}
}

// FindByID retrieves an inquiry by ID
func (r *PostgresInquiryRepository) FindByID(ctx context.Context, id uint) (*domain.Inquiry, error) {
	inquiry := &domain.Inquiry{}
	query := `
		SELECT id, status, comment, note, customer_ref_id, created_at, updated_at
		FROM inquiries
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inquiry.ID,
		&inquiry.Status,
		&inquiry.Comment,
		&inquiry.Note,
		&inquiry.CustomerRefID,
		&inquiry.CreatedAt,
		&inquiry.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}

	return inquiry, nil
}

// FindAll retrieves one page of inquiries matching the filter
func (r *PostgresInquiryRepository) FindAll(ctx context.Context, pageNo, pageSize int, sortBy, sortDirection string, filter domain.InquiryFilter) ([]domain.Inquiry, error) {
	if pageNo < 0 {
		pageNo = 0
	}

	var conditions []string
	var args []interface{}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Comment != "" {
		args = append(args, "%"+filter.Comment+"%")
		conditions = append(conditions, fmt.Sprintf("comment ILIKE $%d", len(args)))
	}
	if filter.Note != "" {
		args = append(args, "%"+filter.Note+"%")
		conditions = append(conditions, fmt.Sprintf("note ILIKE $%d", len(args)))
	}

	query := `
		SELECT id, status, comment, note, customer_ref_id, created_at, updated_at
		FROM inquiries
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// orderClause only emits whitelisted columns
	query += " ORDER BY " + orderClause(sortBy, sortDirection)

	if pageSize > 0 {
		args = append(args, pageSize)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, pageNo*pageSize)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []domain.Inquiry{}
	for rows.Next() {
		inquiry := domain.Inquiry{}
		err := rows.Scan(
			&inquiry.ID,
			&inquiry.Status,
			&inquiry.Comment,
			&inquiry.Note,
			&inquiry.CustomerRefID,
			&inquiry.CreatedAt,
			&inquiry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, rows.Err()
}

// Save inserts the inquiry when it has no id yet, otherwise replaces the stored record
func (r *PostgresInquiryRepository) Save(ctx context.Context, inquiry *domain.Inquiry) error {
	now := time.Now()
	inquiry.UpdatedAt = now

	if inquiry.ID == 0 {
		inquiry.CreatedAt = now
		query := `
			INSERT INTO inquiries (status, comment, note, customer_ref_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		err := r.db.QueryRowContext(ctx, query,
			inquiry.Status,
			inquiry.Comment,
			inquiry.Note,
			inquiry.CustomerRefID,
			inquiry.CreatedAt,
			inquiry.UpdatedAt,
		).Scan(&inquiry.ID)
		if err != nil {
			return fmt.Errorf("failed to create inquiry: %w", err)
		}
		return nil
	}

	query := `
		UPDATE inquiries
		SET status = $1, comment = $2, note = $3, customer_ref_id = $4, updated_at = $5
		WHERE id = $6
	`
	if _, err := r.db.ExecContext(ctx, query,
		inquiry.Status,
		inquiry.Comment,
		inquiry.Note,
		inquiry.CustomerRefID,
		inquiry.UpdatedAt,
		inquiry.ID,
	); err != nil {
		return fmt.Errorf("failed to update inquiry: %w", err)
	}
	return nil
}

// DeleteByID removes an inquiry. Deleting an absent id is a no-op.
func (r *PostgresInquiryRepository) DeleteByID(ctx context.Context, id uint) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inquiries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	return nil
}

// Count returns the total number of inquiries
func (r *PostgresInquiryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}

// InitSchema creates the inquiries table if it doesn't exist
func (r *PostgresInquiryRepository) InitSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS inquiries (
			id SERIAL PRIMARY KEY,
			status VARCHAR(32) NOT NULL,
			comment TEXT,
			note TEXT,
			customer_ref_id BIGINT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
