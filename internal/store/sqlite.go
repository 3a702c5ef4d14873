package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"CollectIQ/internal/model"
)

// SQLiteStore persists price points to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so report readers do not block pipeline writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_points (
			product            TEXT NOT NULL,
			date               TEXT NOT NULL,
			condition_category TEXT NOT NULL,
			source             TEXT NOT NULL,
			price              TEXT NOT NULL,
			confidence         TEXT NOT NULL,
			listing_count      INTEGER NOT NULL,
			PRIMARY KEY (product, date, condition_category, source)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_points_product_date ON price_points(product, date)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// UpsertPoints inserts or updates points keyed on
// (product, date, condition, source). Price and confidence go through
// the wire codec so stored values are exact 2-decimal fixed point.
func (s *SQLiteStore) UpsertPoints(product string, points []model.PricePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO price_points
		(product, date, condition_category, source, price, confidence, listing_count)
		VALUES (?,?,?,?,?,?,?)
		ON CONFLICT(product, date, condition_category, source) DO UPDATE SET
			price = excluded.price,
			confidence = excluded.confidence,
			listing_count = excluded.listing_count`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		rec := Encode(p)
		if _, err := stmt.Exec(product, rec.Date, rec.Condition, rec.Source,
			rec.Price, rec.Confidence, rec.ListingCount); err != nil {
			return fmt.Errorf("upsert point %s/%s: %w", rec.Date, rec.Condition, err)
		}
	}
	return tx.Commit()
}

// Series returns all stored points for a product, sorted ascending by
// date then condition.
func (s *SQLiteStore) Series(product string) ([]model.PricePoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT date, condition_category, source, price, confidence, listing_count
		FROM price_points WHERE product = ?
		ORDER BY date, condition_category, source`, product)
	if err != nil {
		return nil, fmt.Errorf("query series: %w", err)
	}
	defer rows.Close()

	var points []model.PricePoint
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Date, &rec.Condition, &rec.Source,
			&rec.Price, &rec.Confidence, &rec.ListingCount); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		p, err := Decode(rec)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
