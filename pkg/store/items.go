package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedmirror/pkg/domain"
)

// itemSQL represents an item row for SQL operations
type itemSQL struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	CreatedAt   time.Time `db:"created_at"`
}

// ReplaceItems swaps the whole cache for the given items in a single
// transaction. Items with a zero ID get one assigned by the database, items
// carrying a source ID keep it. Returns the stored items with final IDs.
func (s *Store) ReplaceItems(ctx context.Context, items []domain.Item) ([]domain.Item, error) {
	query := `
		INSERT INTO items (id, title, description, image_url)
		VALUES (nullif(:id, 0), :title, :description, :image_url)
	`

	var stored []domain.Item
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		inserted := make([]domain.Item, 0, len(items))

		err := s.inTransaction(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
				return fmt.Errorf("clear items: %w", err)
			}

			for _, item := range items {
				res, err := tx.NamedExecContext(ctx, query, &itemSQL{
					ID:          item.ID,
					Title:       item.Title,
					Description: item.Description,
					ImageURL:    item.ImageURL,
				})
				if err != nil {
					return fmt.Errorf("insert item: %w", err)
				}

				id, err := res.LastInsertId()
				if err != nil {
					return fmt.Errorf("get insert id: %w", err)
				}
				item.ID = id
				inserted = append(inserted, item)
			}
			return nil
		})
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("replace items: %w", err)}
		}

		stored = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// ListItems returns all cached items ordered by ID
func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	var sqlItems []itemSQL
	query := "SELECT id, title, description, image_url, created_at FROM items ORDER BY id"
	if err := s.db.SelectContext(ctx, &sqlItems, query); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := make([]domain.Item, 0, len(sqlItems))
	for i := range sqlItems {
		items = append(items, toDomainItem(&sqlItems[i]))
	}
	return items, nil
}

// CountItems returns the number of cached items
func (s *Store) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT count(*) FROM items"); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// DeleteItems removes all cached items
func (s *Store) DeleteItems(ctx context.Context) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM items"); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("delete items: %w", err)}
		}
		return nil
	})
}

// toDomainItem converts a SQL item to the domain type
func toDomainItem(sqlItem *itemSQL) domain.Item {
	return domain.Item{
		ID:          sqlItem.ID,
		Title:       sqlItem.Title,
		Description: sqlItem.Description,
		ImageURL:    sqlItem.ImageURL,
	}
}
