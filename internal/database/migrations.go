package database

import (
	"fmt"
	"log"
)

// Migration represents one schema migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in version order; the migrations table records what
// has already run.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			uid TEXT PRIMARY KEY,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			phone_number TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version: 2,
		Name:    "create_groups",
		SQL: `CREATE TABLE IF NOT EXISTS groups (
			gid INTEGER PRIMARY KEY AUTOINCREMENT,
			group_name TEXT NOT NULL,
			owner_uid TEXT NOT NULL REFERENCES users(uid),
			location_lat REAL NOT NULL DEFAULT 0,
			location_long REAL NOT NULL DEFAULT 0,
			group_type TEXT NOT NULL DEFAULT 'planned',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version: 3,
		Name:    "create_members",
		SQL: `CREATE TABLE IF NOT EXISTS members (
			uid TEXT NOT NULL REFERENCES users(uid),
			gid INTEGER NOT NULL REFERENCES groups(gid),
			role TEXT NOT NULL DEFAULT 'Member',
			joined_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (uid, gid)
		)`,
	},
	{
		Version: 4,
		Name:    "create_invites",
		SQL: `CREATE TABLE IF NOT EXISTS invites (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uid TEXT NOT NULL,
			gid INTEGER NOT NULL REFERENCES groups(gid),
			invited_by TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'Member',
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version: 5,
		Name:    "create_messages",
		SQL: `CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			gid INTEGER NOT NULL REFERENCES groups(gid),
			sender_uid TEXT NOT NULL,
			sender_name TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL,
			timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version: 6,
		Name:    "create_trips",
		SQL: `CREATE TABLE IF NOT EXISTS trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			gid INTEGER NOT NULL,
			uid TEXT NOT NULL,
			location_lat REAL NOT NULL DEFAULT 0,
			location_long REAL NOT NULL DEFAULT 0,
			num_destinations INTEGER NOT NULL DEFAULT 0,
			landmarks_json TEXT NOT NULL DEFAULT '[]',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version: 7,
		Name:    "message_group_index",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_messages_gid_timestamp ON messages(gid, timestamp)`,
	},
}

// Migrate applies all pending migrations in order
func (db *DB) Migrate() error {
	if err := db.initMigrationsTable(); err != nil {
		return err
	}

	applied, err := db.appliedMigrations()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := db.applyMigration(m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func (db *DB) initMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func (db *DB) appliedMigrations() (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

func (db *DB) applyMigration(m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
