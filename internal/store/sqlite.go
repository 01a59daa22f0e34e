package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"options-desk/internal/models"
)

// SQLiteStore implements JournalStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed journal store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Built strategies with their frozen legs and grid P&L envelope
	CREATE TABLE IF NOT EXISTS strategy_analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME NOT NULL,
		name TEXT NOT NULL,
		policy TEXT NOT NULL,
		spot REAL NOT NULL,
		sigma REAL NOT NULL,
		time_to_expiry REAL NOT NULL,
		rate REAL NOT NULL,
		legs TEXT NOT NULL,
		net_premium REAL NOT NULL,
		max_profit REAL NOT NULL,
		max_loss REAL NOT NULL
	);

	-- Priced contracts with their Greeks
	CREATE TABLE IF NOT EXISTS contract_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME NOT NULL,
		kind TEXT NOT NULL,
		spot REAL NOT NULL,
		strike REAL NOT NULL,
		rate REAL NOT NULL,
		yield REAL NOT NULL,
		sigma REAL NOT NULL,
		time_to_expiry REAL NOT NULL,
		greeks TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_created ON strategy_analyses(created_at);
	CREATE INDEX IF NOT EXISTS idx_snapshots_created ON contract_snapshots(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveAnalysis persists one strategy build.
func (s *SQLiteStore) SaveAnalysis(ctx context.Context, a *models.StrategyAnalysis) error {
	legsJSON, err := json.Marshal(a.Legs)
	if err != nil {
		return fmt.Errorf("encoding legs: %w", err)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO strategy_analyses
		(created_at, name, policy, spot, sigma, time_to_expiry, rate, legs, net_premium, max_profit, max_loss)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.CreatedAt, string(a.Name), a.Policy, a.Spot, a.Sigma, a.TimeToExpiry, a.Rate,
		string(legsJSON), a.NetPremium, a.MaxProfit, a.MaxLoss)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}
	a.ID, _ = res.LastInsertId()
	return nil
}

// ListAnalyses returns the most recent strategy builds, newest first.
func (s *SQLiteStore) ListAnalyses(ctx context.Context, limit int) ([]models.StrategyAnalysis, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, name, policy, spot, sigma, time_to_expiry, rate, legs, net_premium, max_profit, max_loss
		FROM strategy_analyses ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	var out []models.StrategyAnalysis
	for rows.Next() {
		var a models.StrategyAnalysis
		var name, legsJSON string
		if err := rows.Scan(&a.ID, &a.CreatedAt, &name, &a.Policy, &a.Spot, &a.Sigma,
			&a.TimeToExpiry, &a.Rate, &legsJSON, &a.NetPremium, &a.MaxProfit, &a.MaxLoss); err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}
		a.Name = models.StrategyName(name)
		if err := json.Unmarshal([]byte(legsJSON), &a.Legs); err != nil {
			return nil, fmt.Errorf("decoding legs: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SaveSnapshot persists one pricing request with its Greeks.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap *models.ContractSnapshot) error {
	greeksJSON, err := json.Marshal(snap.Greeks)
	if err != nil {
		return fmt.Errorf("encoding greeks: %w", err)
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}

	p := snap.Params
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contract_snapshots
		(created_at, kind, spot, strike, rate, yield, sigma, time_to_expiry, greeks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.CreatedAt, string(p.Kind), p.Spot, p.Strike, p.Rate, p.Yield, p.Sigma, p.TimeToExpiry,
		string(greeksJSON))
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	snap.ID, _ = res.LastInsertId()
	return nil
}

// ListSnapshots returns the most recent pricing requests, newest first.
func (s *SQLiteStore) ListSnapshots(ctx context.Context, limit int) ([]models.ContractSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, kind, spot, strike, rate, yield, sigma, time_to_expiry, greeks
		FROM contract_snapshots ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var out []models.ContractSnapshot
	for rows.Next() {
		var snap models.ContractSnapshot
		var kind, greeksJSON string
		if err := rows.Scan(&snap.ID, &snap.CreatedAt, &kind, &snap.Params.Spot, &snap.Params.Strike,
			&snap.Params.Rate, &snap.Params.Yield, &snap.Params.Sigma, &snap.Params.TimeToExpiry,
			&greeksJSON); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snap.Params.Kind = models.OptionKind(kind)
		if err := json.Unmarshal([]byte(greeksJSON), &snap.Greeks); err != nil {
			return nil, fmt.Errorf("decoding greeks: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
