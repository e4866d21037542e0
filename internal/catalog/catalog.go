package catalog

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

// Catalog implements types.Catalog using SQLite as the query engine and a
// JSONL file as the source of truth.
type Catalog struct {
	mu        sync.RWMutex
	attached  bool
	config    types.Config
	db        *sql.DB
	jsonlPath string
	logger    *slog.Logger
	now       func() time.Time
}

var _ types.Catalog = (*Catalog)(nil)

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger for catalog events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog creates a detached catalog; call Attach to initialize it.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach validates config, creates DataDir if needed, rebuilds catalog.db
// and loads definitions.jsonl into it.
// Returns ErrAlreadyAttached if already attached.
func (c *Catalog) Attach(config types.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	// The JSONL file is authoritative; start from an empty database.
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}

	jsonlPath := filepath.Join(dataDir, jsonlFileName)
	if err := ensureJSONL(jsonlPath); err != nil {
		db.Close()
		return err
	}
	loaded, err := loadJSONL(db, jsonlPath, c.logger)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	c.db = db
	c.config = config
	c.jsonlPath = jsonlPath
	c.attached = true

	c.logger.Info("catalog attached", "data_dir", dataDir, "definitions", loaded)
	return nil
}

// Detach closes the database. Detach is idempotent.
func (c *Catalog) Detach() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return nil
	}
	c.attached = false
	db := c.db
	c.db = nil
	if err := db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	c.logger.Info("catalog detached", "data_dir", c.config.DataDir)
	return nil
}

// Put validates def and stores it under name. An existing entry keeps its
// DefinitionID and CreatedAt; UpdatedAt is refreshed. Storing a definition
// whose digest matches the existing entry returns that entry unchanged and
// leaves definitions.jsonl untouched. Names must be non-empty and carry no
// leading or trailing whitespace.
func (c *Catalog) Put(name string, def *types.Definition) (*types.Entry, error) {
	if name == "" || strings.TrimSpace(name) != name {
		return nil, types.ErrInvalidName
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("definition %q: %w", name, err)
	}
	body, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("encode definition %q: %w", name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.attached {
		return nil, types.ErrCatalogDetached
	}

	now := c.now().UTC()
	entry := &types.Entry{Name: name, Definition: def, Digest: digest(body), CreatedAt: now, UpdatedAt: now}
	existing, err := c.getLocked(name)
	switch {
	case err == nil && existing.Digest == entry.Digest:
		c.logger.Debug("definition unchanged", "name", name, "digest", entry.Digest)
		return existing, nil
	case err == nil:
		entry.DefinitionID = existing.DefinitionID
		entry.CreatedAt = existing.CreatedAt
	case errors.Is(err, types.ErrNotFound):
		entry.DefinitionID = types.NewID()
	default:
		return nil, err
	}

	_, err = c.db.Exec(`INSERT INTO definitions (definition_id, name, body, digest, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(name) DO UPDATE SET body = excluded.body, digest = excluded.digest, updated_at = excluded.updated_at`,
		entry.DefinitionID, entry.Name, string(body), entry.Digest, formatTime(entry.CreatedAt), formatTime(entry.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("store definition %q: %w", name, err)
	}
	if err := c.persistLocked(); err != nil {
		return nil, err
	}

	c.logger.Debug("definition stored", "name", name, "definition_id", entry.DefinitionID)
	return entry, nil
}

// Get returns the entry stored under name.
func (c *Catalog) Get(name string) (*types.Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.attached {
		return nil, types.ErrCatalogDetached
	}
	return c.getLocked(name)
}

// List returns every entry ordered by name.
func (c *Catalog) List() ([]*types.Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.attached {
		return nil, types.ErrCatalogDetached
	}
	return c.listLocked()
}

// Delete removes the entry stored under name.
func (c *Catalog) Delete(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.attached {
		return types.ErrCatalogDetached
	}

	res, err := c.db.Exec(`DELETE FROM definitions WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete definition %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete definition %q: %w", name, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	if err := c.persistLocked(); err != nil {
		return err
	}

	c.logger.Debug("definition deleted", "name", name)
	return nil
}

const selectEntry = `SELECT definition_id, name, body, digest, created_at, updated_at FROM definitions`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*types.Entry, error) {
	var (
		e                types.Entry
		body             string
		created, updated string
	)
	if err := row.Scan(&e.DefinitionID, &e.Name, &body, &e.Digest, &created, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(body), &e.Definition); err != nil {
		return nil, fmt.Errorf("decode definition %q: %w", e.Name, err)
	}
	var err error
	if e.CreatedAt, err = parseTime(created); err != nil {
		return nil, fmt.Errorf("parse created_at for %q: %w", e.Name, err)
	}
	if e.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, fmt.Errorf("parse updated_at for %q: %w", e.Name, err)
	}
	return &e, nil
}

func (c *Catalog) getLocked(name string) (*types.Entry, error) {
	e, err := scanEntry(c.db.QueryRow(selectEntry+` WHERE name = ?`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (c *Catalog) listLocked() ([]*types.Entry, error) {
	rows, err := c.db.Query(selectEntry + ` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query definitions: %w", err)
	}
	defer rows.Close()

	entries := []*types.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate definitions: %w", err)
	}
	return entries, nil
}

// persistLocked rewrites definitions.jsonl from the database.
func (c *Catalog) persistLocked() error {
	entries, err := c.listLocked()
	if err != nil {
		return err
	}
	records := make([]json.RawMessage, 0, len(entries))
	for _, e := range entries {
		rec, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode entry %q: %w", e.Name, err)
		}
		records = append(records, rec)
	}
	if err := writeJSONL(c.jsonlPath, records); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}

// digest returns the hex BLAKE3-256 hash of an encoded definition body.
// encoding/json sorts map keys, so equal definitions hash equally.
func digest(body []byte) string {
	sum := blake3.Sum256(body)
	return hex.EncodeToString(sum[:])
}
