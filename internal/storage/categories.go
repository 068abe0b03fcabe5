package storage

import (
	"database/sql"

	"tail/internal/tailerr"
)

// CategoryRow is a user-defined grouping apps can be tagged with.
type CategoryRow struct {
	ID    int64
	Name  string
	Icon  string
	Color sql.NullString
}

// CreateCategory inserts a new category and returns its id.
func (s *Store) CreateCategory(name, icon, color string) (int64, error) {
	var colorArg interface{}
	if color != "" {
		colorArg = color
	}
	result, err := s.db.Exec(`INSERT INTO categories (name, icon, color) VALUES (?, ?, ?)`, name, icon, colorArg)
	if err != nil {
		return 0, tailerr.Wrap(tailerr.KindStorage, "insert category", err)
	}
	return result.LastInsertId()
}

// GetCategories returns every defined category, ordered by name.
func (s *Store) GetCategories() ([]CategoryRow, error) {
	rows, err := s.db.Query(`SELECT id, name, icon, color FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "query categories", err)
	}
	defer rows.Close()

	var categories []CategoryRow
	for rows.Next() {
		var c CategoryRow
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color); err != nil {
			return nil, tailerr.Wrap(tailerr.KindStorage, "scan category", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteCategory removes a category; app_categories rows referencing it are
// removed by the ON DELETE CASCADE foreign key.
func (s *Store) DeleteCategory(id int64) error {
	result, err := s.db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "delete category", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "read rows affected", err)
	}
	if n == 0 {
		return tailerr.NotFound("category")
	}
	return nil
}

// UpdateCategory overwrites name/icon/color for an existing category.
func (s *Store) UpdateCategory(id int64, name, icon, color string) error {
	var colorArg interface{}
	if color != "" {
		colorArg = color
	}
	result, err := s.db.Exec(`UPDATE categories SET name = ?, icon = ?, color = ? WHERE id = ?`, name, icon, colorArg, id)
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "update category", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "read rows affected", err)
	}
	if n == 0 {
		return tailerr.NotFound("category")
	}
	return nil
}

// GetAppCategories returns the category ids attached to appName. Per
// SPEC_FULL.md §13 Open Question 3, an app with no categories returns
// (nil, nil) — never an error.
func (s *Store) GetAppCategories(appName string) ([]int64, error) {
	rows, err := s.db.Query(`SELECT category_id FROM app_categories WHERE app_name = ? ORDER BY category_id ASC`, appName)
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "query app categories", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, tailerr.Wrap(tailerr.KindStorage, "scan app category", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RemoveAppFromCategory detaches appName from categoryID without touching
// any of its other category attachments.
func (s *Store) RemoveAppFromCategory(appName string, categoryID int64) error {
	result, err := s.db.Exec(`DELETE FROM app_categories WHERE app_name = ? AND category_id = ?`, appName, categoryID)
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "remove app from category", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "read rows affected", err)
	}
	if n == 0 {
		return tailerr.NotFound("app_category")
	}
	return nil
}

// GetCategoryApps returns the distinct app names attached to categoryID —
// the reverse of GetAppCategories — per spec.md §8 scenario S6. app_name
// in app_categories is already the canonical name (the same string
// window_events stores it under), so no join is needed to resolve it.
func (s *Store) GetCategoryApps(categoryID int64) ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT app_name FROM app_categories WHERE category_id = ? ORDER BY app_name ASC`, categoryID)
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "query category apps", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, tailerr.Wrap(tailerr.KindStorage, "scan category app", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// SetAppCategories replaces appName's full category set atomically: delete
// all existing attachments then insert the new set, inside a single
// connection-scoped transaction.
func (s *Store) SetAppCategories(appName string, categoryIDs []int64) error {
	return s.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM app_categories WHERE app_name = ?`, appName); err != nil {
			return tailerr.Wrap(tailerr.KindStorage, "clear app categories", err)
		}
		for _, id := range categoryIDs {
			if _, err := tx.Exec(`INSERT INTO app_categories (app_name, category_id) VALUES (?, ?)`, appName, id); err != nil {
				return tailerr.Wrap(tailerr.KindStorage, "insert app category", err)
			}
		}
		return nil
	})
}
