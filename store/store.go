// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package store implements the SQLite storage of flux tables
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/swimflux/fluxes"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a table is not in the database
var ErrNotFound = errors.New("store: flux table not found")

// Record holds the summary of a stored table
type Record struct {
	ID      string  `db:"id"`      // unique identifier
	Run     string  `db:"run"`     // key of run that produced the table
	Sid     int     `db:"sid"`     // soil identifier
	Dz      float64 `db:"dz"`      // path length
	Nfu     int     `db:"nfu"`     // number of unsaturated potentials
	Nft     int     `db:"nft"`     // total number of potentials
	Nit     int     `db:"nit"`     // total number of Newton iterations
	Nsol    int     `db:"nsol"`    // number of steady-state solutions
	Nwarns  int     `db:"nwarns"`  // number of warnings
	Created string  `db:"created"` // creation time (RFC3339)
}

// row holds a full row of the flux_tables table
type row struct {
	Record
	PhifJSON string `db:"phif_json"`
	QJSON    string `db:"q_json"`
}

// DB holds the connection to a database of flux tables
type DB struct {
	conn *sqlx.DB
}

// Open connects to the flux tables database in file path; the file and
// the flux_tables schema are created if missing
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, chk.Err("store: cannot open %q:\n%v", path, err)
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, chk.Err("store: cannot migrate %q:\n%v", path, err)
	}
	return db, nil
}

// Close releases the connection; tables already saved remain in the file
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the flux_tables table and its (sid, dz) index
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS flux_tables (
		id TEXT PRIMARY KEY,
		run TEXT NOT NULL,
		sid INTEGER NOT NULL,
		dz REAL NOT NULL,
		nfu INTEGER NOT NULL,
		nft INTEGER NOT NULL,
		nit INTEGER NOT NULL,
		nsol INTEGER NOT NULL,
		nwarns INTEGER NOT NULL,
		created TEXT NOT NULL,
		phif_json TEXT NOT NULL,
		q_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_flux_tables_sid_dz ON flux_tables(sid, dz);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save writes one table and returns its identifier
func (db *DB) Save(run string, t *fluxes.Table) (id string, err error) {
	ids, err := db.SaveAll(run, []*fluxes.Table{t})
	if err != nil {
		return
	}
	return ids[0], nil
}

// SaveAll writes all tables in a single transaction and returns their identifiers
func (db *DB) SaveAll(run string, tables []*fluxes.Table) (ids []string, err error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO flux_tables
		(id, run, sid, dz, nfu, nft, nit, nsol, nwarns, created, phif_json, q_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	created := time.Now().UTC().Format(time.RFC3339)
	ids = make([]string, len(tables))
	for k, t := range tables {
		e := t.Ends[0]
		phifJSON, err := json.Marshal(e.Phif)
		if err != nil {
			return nil, chk.Err("store: cannot encode potentials of table %d:\n%v", k, err)
		}
		qJSON, err := json.Marshal(t.Q)
		if err != nil {
			return nil, chk.Err("store: cannot encode fluxes of table %d:\n%v", k, err)
		}
		ids[k] = uuid.NewString()
		_, err = stmt.Exec(
			ids[k], run, e.Sid, e.Dz, e.Nfu, e.Nft,
			t.Stats.Nit, t.Stats.Nsol, len(t.Stats.Warns), created,
			string(phifJSON), string(qJSON),
		)
		if err != nil {
			return nil, chk.Err("store: cannot insert table of soil %d with dz=%g:\n%v", e.Sid, e.Dz, err)
		}
	}
	return ids, tx.Commit()
}

// Load reads the table with the given identifier
func (db *DB) Load(id string) (*fluxes.Table, error) {
	var r row
	err := db.conn.Get(&r, "SELECT * FROM flux_tables WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, chk.Err("store: cannot load table %q:\n%v", id, err)
	}
	return r.table()
}

// Find reads the most recently saved table of soil sid with path length dz
func (db *DB) Find(sid int, dz float64) (*fluxes.Table, error) {
	var r row
	err := db.conn.Get(&r, "SELECT * FROM flux_tables WHERE sid = ? AND dz = ? ORDER BY rowid DESC LIMIT 1", sid, dz)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, chk.Err("store: cannot find table of soil %d with dz=%g:\n%v", sid, dz, err)
	}
	return r.table()
}

// List returns the summaries of all tables in the order they were saved
func (db *DB) List() ([]Record, error) {
	var records []Record
	err := db.conn.Select(&records,
		`SELECT id, run, sid, dz, nfu, nft, nit, nsol, nwarns, created
		FROM flux_tables ORDER BY rowid`)
	return records, err
}

// Delete removes the table with the given identifier
func (db *DB) Delete(id string) error {
	res, err := db.conn.Exec("DELETE FROM flux_tables WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// table decodes the row; both ends of the table share the same potentials
func (r row) table() (t *fluxes.Table, err error) {
	var phif []float64
	err = json.Unmarshal([]byte(r.PhifJSON), &phif)
	if err != nil {
		return nil, chk.Err("store: cannot decode potentials of table %q:\n%v", r.ID, err)
	}
	t = &fluxes.Table{
		Stats: fluxes.Stats{Nit: r.Nit, Nsol: r.Nsol},
	}
	err = json.Unmarshal([]byte(r.QJSON), &t.Q)
	if err != nil {
		return nil, chk.Err("store: cannot decode fluxes of table %q:\n%v", r.ID, err)
	}
	for ie := 0; ie < 2; ie++ {
		t.Ends[ie] = fluxes.End{
			Sid:  r.Sid,
			Nfu:  r.Nfu,
			Nft:  r.Nft,
			Dz:   r.Dz,
			Phif: append([]float64{}, phif...),
		}
	}
	return
}
