package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"menuhub/pkg/models"
)

// Status is the outcome of a category mutation. None of these are errors;
// duplicate and missing names are normal results the caller relays as-is.
type Status string

const (
	StatusAdded   Status = "added"
	StatusExists  Status = "exists"
	StatusEmpty   Status = "empty"
	StatusDeleted Status = "deleted"
)

// DefaultCategories seeds an empty database on first startup, in this order.
var DefaultCategories = []string{
	"Black", "White", "Filter", "Specials", "Pastries", "Sweets", "Water",
}

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// SeedDefaults inserts the default category set once, only when the table is
// still empty. Safe to call on every startup.
func (r *Repo) SeedDefaults(ctx context.Context) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var count int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return tx.Commit()
	}

	for _, name := range DefaultCategories {
		if _, err = tx.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// AddCategory inserts a category name. The UNIQUE index makes the
// check-then-insert atomic: of two concurrent adds with the same new name,
// exactly one reports added and the other exists.
func (r *Repo) AddCategory(ctx context.Context, name string) (Status, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return StatusEmpty, nil
	}

	_, err := r.DB.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return StatusExists, nil
		}
		return "", fmt.Errorf("insert category: %w", err)
	}
	return StatusAdded, nil
}

// DeleteCategory removes a category by name. Deleting an absent name is not
// an error; the call is idempotent. Items referencing the name keep their
// free-text value.
func (r *Repo) DeleteCategory(ctx context.Context, name string) (Status, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return StatusEmpty, nil
	}

	if _, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE name = ?`, name); err != nil {
		return "", fmt.Errorf("delete category: %w", err)
	}
	return StatusDeleted, nil
}

// ListCategories returns category names in creation order (seed order for
// the defaults).
func (r *Repo) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return names, nil
}

// ItemFields carries every mutable field of a menu item. For updates an
// empty Image keeps the previously stored value.
type ItemFields struct {
	Category string
	NameEN   string
	NameAR   string
	Price    string
	Origin   string
	Process  string
	Flavors  string
	Image    string
}

// CreateItem assigns a fresh ID and persists the item.
func (r *Repo) CreateItem(ctx context.Context, f ItemFields) (*models.MenuItem, error) {
	item := &models.MenuItem{
		ID:       uuid.NewString(),
		Category: f.Category,
		NameEN:   f.NameEN,
		NameAR:   f.NameAR,
		Price:    f.Price,
		Origin:   f.Origin,
		Process:  f.Process,
		Flavors:  f.Flavors,
		Image:    f.Image,
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, category, name_en, name_ar, price, origin, process, flavors, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.Category, item.NameEN, item.NameAR, item.Price, item.Origin, item.Process, item.Flavors, item.Image)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

// UpdateItem replaces all mutable fields of the item. An empty Image keeps
// the stored one. Updating an unknown id is a silent no-op; callers that
// need to distinguish check GetItem first.
func (r *Repo) UpdateItem(ctx context.Context, id string, f ItemFields) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items SET
			category = ?, name_en = ?, name_ar = ?, price = ?,
			origin = ?, process = ?, flavors = ?,
			image = CASE WHEN ? = '' THEN image ELSE ? END
		WHERE id = ?
	`, f.Category, f.NameEN, f.NameAR, f.Price, f.Origin, f.Process, f.Flavors, f.Image, f.Image, id)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (r *Repo) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, category, name_en, name_ar, price, origin, process, flavors, image
		FROM menu_items
		WHERE id = ?
	`, id)

	var item models.MenuItem
	if err := row.Scan(
		&item.ID, &item.Category, &item.NameEN, &item.NameAR,
		&item.Price, &item.Origin, &item.Process, &item.Flavors, &item.Image,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &item, nil
}

// DeleteItem removes the item; absent ids are not an error.
func (r *Repo) DeleteItem(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// ListItems returns all items in insertion order.
func (r *Repo) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, category, name_en, name_ar, price, origin, process, flavors, image
		FROM menu_items
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	out := make([]models.MenuItem, 0, 16)
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Category, &item.NameEN, &item.NameAR,
			&item.Price, &item.Origin, &item.Process, &item.Flavors, &item.Image,
		); err != nil {
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
		se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
