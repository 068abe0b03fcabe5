package storage

import "tail/internal/tailerr"

// AliasRow maps a raw process/app name to a user-chosen alias.
type AliasRow struct {
	AppName string
	Alias   string
}

// UpsertAlias inserts or replaces appName's alias.
func (s *Store) UpsertAlias(appName, alias string) error {
	_, err := s.db.Exec(`
		INSERT INTO app_aliases (app_name, alias) VALUES (?, ?)
		ON CONFLICT(app_name) DO UPDATE SET alias = excluded.alias`,
		appName, alias)
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "upsert alias", err)
	}
	return nil
}

// GetAliases returns every configured alias.
func (s *Store) GetAliases() ([]AliasRow, error) {
	rows, err := s.db.Query(`SELECT app_name, alias FROM app_aliases ORDER BY app_name ASC`)
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "query aliases", err)
	}
	defer rows.Close()

	var aliases []AliasRow
	for rows.Next() {
		var a AliasRow
		if err := rows.Scan(&a.AppName, &a.Alias); err != nil {
			return nil, tailerr.Wrap(tailerr.KindStorage, "scan alias", err)
		}
		aliases = append(aliases, a)
	}
	return aliases, rows.Err()
}

// DeleteAlias removes appName's alias, if any.
func (s *Store) DeleteAlias(appName string) error {
	result, err := s.db.Exec(`DELETE FROM app_aliases WHERE app_name = ?`, appName)
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "delete alias", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "read rows affected", err)
	}
	if n == 0 {
		return tailerr.NotFound("alias")
	}
	return nil
}
