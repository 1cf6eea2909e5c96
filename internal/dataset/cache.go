package dataset

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// Fingerprint identifies the CSV a cache was built from. A cache is only
// reused when every field matches the file on disk.
type Fingerprint struct {
	Path    string
	Size    int64
	ModTime int64 // unix nanoseconds
	Columns Columns
}

// FingerprintOf stats the file at path.
func FingerprintOf(path string, cols Columns) (Fingerprint, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Fingerprint{}, err
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint{Path: abs, Size: fi.Size(), ModTime: fi.ModTime().UnixNano(), Columns: cols}, nil
}

// Cache keeps a parsed copy of one dataset in sqlite.
type Cache struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenCache opens (creating if needed) the cache database at path.
func OpenCache(path string, log *zap.Logger) (*Cache, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db, log: log}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// SchemaVersion is stored as the cache's user_version. A cache written
// under any other version is dropped and rebuilt on open.
const SchemaVersion = 1

func migrate(db *sql.DB) error {
	var current int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if current != 0 && current != SchemaVersion {
		if _, err := db.Exec(`DROP TABLE IF EXISTS records; DROP TABLE IF EXISTS source;`); err != nil {
			return fmt.Errorf("drop schema v%d: %w", current, err)
		}
	}

	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	if _, err := db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, SchemaVersion)); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

// Lookup returns the cached records when the cache was built from exactly
// the file described by fp. ok is false on a miss.
func (c *Cache) Lookup(fp Fingerprint) (store *Store, ok bool, err error) {
	var got Fingerprint
	row := c.db.QueryRow(`SELECT path, size, mtime, text_column, score_column FROM source WHERE id = 1`)
	err = row.Scan(&got.Path, &got.Size, &got.ModTime, &got.Columns.Text, &got.Columns.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if got != fp {
		c.log.Debug("cache stale", zap.String("cached", got.Path), zap.String("want", fp.Path))
		return nil, false, nil
	}

	rows, err := c.db.Query(`SELECT text, score FROM records ORDER BY position ASC`)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var text sql.NullString
		var rec Record
		if err := rows.Scan(&text, &rec.Score); err != nil {
			return nil, false, err
		}
		rec.Text, rec.HasText = text.String, text.Valid
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return NewStore(fp.Path, records), true, nil
}

// Save replaces the cache contents with records read from the file fp.
func (c *Cache) Save(fp Fingerprint, records []Record) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM source`); err != nil {
		return fmt.Errorf("clear source: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO records(position, text, score) VALUES(?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, r := range records {
		var text any
		if r.HasText {
			text = r.Text
		}
		if _, err := stmt.Exec(i, text, r.Score); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	_, err = tx.Exec(
		`INSERT INTO source(id, path, size, mtime, text_column, score_column, imported_at) VALUES(1,?,?,?,?,?,?)`,
		fp.Path, fp.Size, fp.ModTime, fp.Columns.Text, fp.Columns.Score, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert source: %w", err)
	}
	return tx.Commit()
}
