package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
)

// CategoryRepo defines the persistence operations for Categories.
// Categories are created only through GetOrCreate, so a duplicate name can
// never be inserted.
type CategoryRepo interface {
	// GetOrCreate returns the category with exactly this name (case-sensitive),
	// inserting it first if it does not exist. Lookup and insert run in one
	// transaction.
	GetOrCreate(ctx context.Context, name string) (domain.Category, error)

	// GetByID retrieves a category by primary key.
	// Returns domain.ErrNotFound if no category with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error)

	// GetByName retrieves a category by exact name.
	// Returns domain.ErrNotFound if no category has that name.
	GetByName(ctx context.Context, name string) (domain.Category, error)

	// List returns all categories ordered by name.
	List(ctx context.Context) ([]domain.Category, error)
}

// sqlCategoryRepo is the SQL implementation of CategoryRepo.
type sqlCategoryRepo struct {
	db db
}

// NewCategoryRepo constructs a CategoryRepo backed by the provided db handle.
func NewCategoryRepo(db db) CategoryRepo {
	return &sqlCategoryRepo{db: db}
}

// GetOrCreate looks the name up and inserts it on a miss. ON CONFLICT DO
// NOTHING keeps the insert harmless if another writer got there first; the
// second lookup then returns that writer's row.
func (r *sqlCategoryRepo) GetOrCreate(ctx context.Context, name string) (domain.Category, error) {
	var result domain.Category
	err := atomic(ctx, r.db, func(tx db) error {
		found, err := getCategoryByName(ctx, tx, name)
		if err == nil {
			result = found
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		id, err := newID()
		if err != nil {
			return err
		}
		const q = `
			INSERT INTO categories (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`
		if _, err := tx.ExecContext(ctx, q, id, name); err != nil {
			return err
		}

		result, err = getCategoryByName(ctx, tx, name)
		return err
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.GetOrCreate: %w", err)
	}
	return result, nil
}

// GetByID retrieves a category by primary key.
func (r *sqlCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	const q = `SELECT id, name FROM categories WHERE id = $1`

	result, err := scanCategory(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetByName retrieves a category by exact name.
func (r *sqlCategoryRepo) GetByName(ctx context.Context, name string) (domain.Category, error) {
	result, err := getCategoryByName(ctx, r.db, name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.GetByName: %w", err)
	}
	return result, nil
}

// List returns all categories ordered by name.
func (r *sqlCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `SELECT id, name FROM categories ORDER BY name`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.List: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CategoryRepo.List: scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.List: rows: %w", err)
	}
	return categories, nil
}

func getCategoryByName(ctx context.Context, d db, name string) (domain.Category, error) {
	const q = `SELECT id, name FROM categories WHERE name = $1`
	return scanCategory(d.QueryRowContext(ctx, q, name))
}

// scanCategory maps a single database row into a domain.Category.
func scanCategory(s scanner) (domain.Category, error) {
	var c domain.Category
	if err := s.Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, err
	}
	return c, nil
}
