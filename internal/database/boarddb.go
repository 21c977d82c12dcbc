package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/pcblab/pcbrepair/internal/model"
)

// dbFileName is the fixed name of the index file inside the database
// directory.
const dbFileName = "pcbrepair.db"

// BoardDB provides SQLite-based storage for decoded board reports.
// One database indexes every board scanned on a machine; rows are
// keyed by the container digest so re-scanning the same file updates
// its entry instead of duplicating it.
type BoardDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures BoardDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a BoardDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*BoardDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to forbid file creation and
	// mode=rwc to allow it.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	bdb := &BoardDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := bdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return bdb, nil
}

// Close closes the database connection.
func (bdb *BoardDB) Close() error {
	return bdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (bdb *BoardDB) createTables() error {
	schema := `
	-- Boards store one row per decoded repair file
	CREATE TABLE IF NOT EXISTS boards (
		digest TEXT PRIMARY KEY,
		file TEXT NOT NULL,
		key_variant TEXT,
		board_model TEXT,
		revision TEXT,
		extended_board_model TEXT,
		extended_revision TEXT,
		part_number TEXT,
		units TEXT,
		symbol_count INTEGER DEFAULT 0,
		pin_count INTEGER DEFAULT 0,
		test_via_count INTEGER DEFAULT 0,
		footprint_count INTEGER DEFAULT 0,
		component_count INTEGER DEFAULT 0,
		error TEXT,
		scanned_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_boards_model ON boards(board_model);
	CREATE INDEX IF NOT EXISTS idx_boards_scanned ON boards(scanned_at);

	-- Components store the bill of materials per board
	CREATE TABLE IF NOT EXISTS components (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		board_digest TEXT NOT NULL REFERENCES boards(digest),
		part_number TEXT NOT NULL,
		description TEXT,
		quantity INTEGER DEFAULT 0,
		location TEXT,
		part_number2 TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_components_digest ON components(board_digest);
	CREATE INDEX IF NOT EXISTS idx_components_part ON components(part_number);
	`

	_, err := bdb.db.ExecContext(context.Background(), schema)
	return err
}

// BoardSummary is one stored board index row.
type BoardSummary struct {
	Digest             string
	File               string
	KeyVariant         string
	BoardModel         string
	Revision           string
	ExtendedBoardModel string
	ExtendedRevision   string
	PartNumber         string
	Units              string
	SymbolCount        int
	PinCount           int
	TestViaCount       int
	FootprintCount     int
	ComponentCount     int
	Error              string
	ScannedAt          time.Time
}

// SaveBoard inserts or updates the index entry for a report.
// The report's bill of materials replaces any previously stored rows
// for the same digest.
func (bdb *BoardDB) SaveBoard(ctx context.Context, report *model.BoardReport) error {
	if report.Digest == "" {
		return fmt.Errorf("report for %s has no digest", report.File)
	}

	var boardModel, revision, extModel, extRevision, partNumber, units string
	var symbols, pins, vias, componentCount int
	if d := report.Description; d != nil {
		boardModel = d.BoardModel
		revision = d.Revision
		extModel = d.ExtendedBoardModel
		extRevision = d.ExtendedRevision
		partNumber = d.PartNumber
		componentCount = len(d.Components)
	}
	if c := report.Content; c != nil {
		units = c.Units.String()
		symbols = len(c.Symbols)
		pins = len(c.Pins)
		vias = len(c.TestVias)
	}

	tx, err := bdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO boards (digest, file, key_variant, board_model, revision,
		extended_board_model, extended_revision, part_number, units,
		symbol_count, pin_count, test_via_count, footprint_count,
		component_count, error, scanned_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(digest) DO UPDATE SET
		file = excluded.file,
		key_variant = excluded.key_variant,
		board_model = excluded.board_model,
		revision = excluded.revision,
		extended_board_model = excluded.extended_board_model,
		extended_revision = excluded.extended_revision,
		part_number = excluded.part_number,
		units = excluded.units,
		symbol_count = excluded.symbol_count,
		pin_count = excluded.pin_count,
		test_via_count = excluded.test_via_count,
		footprint_count = excluded.footprint_count,
		component_count = excluded.component_count,
		error = excluded.error,
		scanned_at = excluded.scanned_at
	`

	scannedAt := report.DateScanned
	if scannedAt.IsZero() {
		scannedAt = time.Now()
	}

	if _, err := tx.ExecContext(ctx, query,
		report.Digest,
		report.File,
		report.KeyVariant,
		boardModel,
		revision,
		extModel,
		extRevision,
		partNumber,
		units,
		symbols,
		pins,
		vias,
		len(report.Footprints),
		componentCount,
		report.Error,
		scannedAt.UTC().Format("2006-01-02 15:04:05"),
	); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM components WHERE board_digest = ?", report.Digest); err != nil {
		return fmt.Errorf("failed to clear components: %w", err)
	}

	if d := report.Description; d != nil {
		insert := `
		INSERT INTO components (board_digest, part_number, description, quantity, location, part_number2)
		VALUES (?, ?, ?, ?, ?, ?)
		`
		for _, c := range d.Components {
			if _, err := tx.ExecContext(ctx, insert,
				report.Digest,
				c.PartNumber,
				c.Description,
				c.Quantity,
				strings.Join(c.Location, " "),
				c.PartNumber2,
			); err != nil {
				return fmt.Errorf("failed to save component %s: %w", c.PartNumber, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit board: %w", err)
	}

	return nil
}

// GetBoard retrieves one board by digest. Returns (nil, nil) if no
// board with that digest is indexed.
func (bdb *BoardDB) GetBoard(ctx context.Context, digest string) (*BoardSummary, error) {
	query := `
	SELECT digest, file, key_variant, board_model, revision,
		extended_board_model, extended_revision, part_number, units,
		symbol_count, pin_count, test_via_count, footprint_count,
		component_count, error, scanned_at
	FROM boards
	WHERE digest = ?
	`

	var b BoardSummary
	var scannedAt string

	err := bdb.db.QueryRowContext(ctx, query, digest).Scan(
		&b.Digest,
		&b.File,
		&b.KeyVariant,
		&b.BoardModel,
		&b.Revision,
		&b.ExtendedBoardModel,
		&b.ExtendedRevision,
		&b.PartNumber,
		&b.Units,
		&b.SymbolCount,
		&b.PinCount,
		&b.TestViaCount,
		&b.FootprintCount,
		&b.ComponentCount,
		&b.Error,
		&scannedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	b.ScannedAt = parseTimestamp(scannedAt)
	return &b, nil
}

// ListBoards returns every indexed board, most recently scanned first.
func (bdb *BoardDB) ListBoards(ctx context.Context) ([]BoardSummary, error) {
	query := `
	SELECT digest, file, key_variant, board_model, revision,
		extended_board_model, extended_revision, part_number, units,
		symbol_count, pin_count, test_via_count, footprint_count,
		component_count, error, scanned_at
	FROM boards
	ORDER BY scanned_at DESC, digest
	`

	rows, err := bdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var results []BoardSummary
	for rows.Next() {
		var b BoardSummary
		var scannedAt string

		if err := rows.Scan(
			&b.Digest,
			&b.File,
			&b.KeyVariant,
			&b.BoardModel,
			&b.Revision,
			&b.ExtendedBoardModel,
			&b.ExtendedRevision,
			&b.PartNumber,
			&b.Units,
			&b.SymbolCount,
			&b.PinCount,
			&b.TestViaCount,
			&b.FootprintCount,
			&b.ComponentCount,
			&b.Error,
			&scannedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan board row: %w", err)
		}

		b.ScannedAt = parseTimestamp(scannedAt)
		results = append(results, b)
	}

	return results, rows.Err()
}

// GetComponents retrieves the stored bill of materials for a board.
func (bdb *BoardDB) GetComponents(ctx context.Context, digest string) ([]model.Component, error) {
	query := `
	SELECT part_number, description, quantity, location, part_number2
	FROM components
	WHERE board_digest = ?
	ORDER BY id
	`

	rows, err := bdb.db.QueryContext(ctx, query, digest)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	defer rows.Close()

	var results []model.Component
	for rows.Next() {
		var c model.Component
		var location string

		if err := rows.Scan(&c.PartNumber, &c.Description, &c.Quantity, &location, &c.PartNumber2); err != nil {
			return nil, fmt.Errorf("failed to scan component row: %w", err)
		}
		if location != "" {
			c.Location = strings.Fields(location)
		}
		results = append(results, c)
	}

	return results, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple
// formats. SQLite may return timestamps in different shapes depending
// on configuration. If parsing fails with all formats, returns zero
// time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
