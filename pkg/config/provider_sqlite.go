package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// InitSchema creates the configuration tables if they do not exist
func (s *SQLiteProvider) InitSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS merge_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			null_value REAL NOT NULL DEFAULT 0,
			depth_unit TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS catalog_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			dsn TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS calculators (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			method TEXT NOT NULL DEFAULT '',
			gr_min REAL NOT NULL DEFAULT 0,
			gr_max REAL NOT NULL DEFAULT 0,
			matrix_density REAL NOT NULL DEFAULT 0,
			fluid_density REAL NOT NULL DEFAULT 0,
			rw REAL NOT NULL DEFAULT 0,
			a REAL NOT NULL DEFAULT 0,
			m REAL NOT NULL DEFAULT 0,
			n REAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS logging_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			debug INTEGER NOT NULL DEFAULT 0,
			file TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create config schema: %w", err)
		}
	}
	return nil
}

// SaveConfig replaces the stored configuration with cfg
func (s *SQLiteProvider) SaveConfig(cfg *ConfigData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT OR REPLACE INTO merge_settings (id, null_value, depth_unit) VALUES (1, ?, ?)`,
		cfg.Merge.NullValue, cfg.Merge.DepthUnit); err != nil {
		return fmt.Errorf("failed to save merge settings: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM catalog_settings`); err != nil {
		return err
	}
	if cfg.Catalog != nil {
		if _, err := tx.Exec(`INSERT INTO catalog_settings (id, dsn) VALUES (1, ?)`, cfg.Catalog.DSN); err != nil {
			return fmt.Errorf("failed to save catalog settings: %w", err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM calculators`); err != nil {
		return err
	}
	for _, c := range cfg.Calculators {
		if _, err := tx.Exec(
			`INSERT INTO calculators (type, method, gr_min, gr_max, matrix_density, fluid_density, rw, a, m, n)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Type, c.Method, c.GRMin, c.GRMax, c.MatrixDensity, c.FluidDensity, c.Rw, c.A, c.M, c.N); err != nil {
			return fmt.Errorf("failed to save calculator: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO logging_settings (id, debug, file) VALUES (1, ?, ?)`,
		boolToInt(cfg.Logging.Debug), cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to save logging settings: %w", err)
	}

	return tx.Commit()
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	row := s.db.QueryRow(`SELECT null_value, depth_unit FROM merge_settings WHERE id = 1`)
	if err := row.Scan(&config.Merge.NullValue, &config.Merge.DepthUnit); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to load merge settings: %w", err)
	}

	var dsn string
	row = s.db.QueryRow(`SELECT dsn FROM catalog_settings WHERE id = 1`)
	switch err := row.Scan(&dsn); err {
	case nil:
		config.Catalog = &CatalogData{DSN: dsn}
	case sql.ErrNoRows:
	default:
		return nil, fmt.Errorf("failed to load catalog settings: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT type, method, gr_min, gr_max, matrix_density, fluid_density, rw, a, m, n FROM calculators ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load calculators: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c CalculatorData
		if err := rows.Scan(&c.Type, &c.Method, &c.GRMin, &c.GRMax,
			&c.MatrixDensity, &c.FluidDensity, &c.Rw, &c.A, &c.M, &c.N); err != nil {
			return nil, fmt.Errorf("failed to scan calculator: %w", err)
		}
		config.Calculators = append(config.Calculators, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var debug int
	row = s.db.QueryRow(`SELECT debug, file FROM logging_settings WHERE id = 1`)
	if err := row.Scan(&debug, &config.Logging.File); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to load logging settings: %w", err)
	}
	config.Logging.Debug = debug != 0

	return config, nil
}

// IsReadOnly returns false: SQLite configurations support updates
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
