package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sqlite database, ensures the schema exists and seeds the
// starter catalog when the package table is empty.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; pinning the pool to one connection
	// serializes creates so id assignment never races or hits SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the starter catalog if DB is empty (idempotent across restarts)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Packages: AUTOINCREMENT so ids are never reused, even though no delete
-- operation exists today.
CREATE TABLE IF NOT EXISTS packages(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price >= 0),
  start_date TIMESTAMP,
  duration TEXT,
  image TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('domestic','international')),
  location TEXT NOT NULL,
  featured INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_packages_category ON packages(category);

-- Inquiries: package_id is a soft reference by design, so no FK constraint.
-- An inquiry must survive its package.
CREATE TABLE IF NOT EXISTS inquiries(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  package_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  message TEXT,
  created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_inquiries_package ON inquiries(package_id);
`
	_, err := db.Exec(schema)
	return err
}
