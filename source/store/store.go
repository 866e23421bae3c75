package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/lookahead/pkg/lookahead"
	_ "modernc.org/sqlite"
)

var (
	tablePattern = regexp.MustCompile(`^[\w\d]+$`)
	ErrBadTable  = errors.New("invalid table name")
)

const createTable = `
create table if not exists %s (
	seq_id integer primary key autoincrement,
	line text not null
)`

// SqliteStore persists line sequences using Sqlite3 as a storage engine.
type SqliteStore struct {
	db  *sql.DB
	log hclog.Logger
}

func New(log hclog.Logger, filename string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return nil, err
	}
	log = log.Named("sqlite-line-store")
	return &SqliteStore{
		db:  db,
		log: log,
	}, nil
}

// Spool behaves the same as SpoolCtx, except that it will use context.Background as the context.
func (s *SqliteStore) Spool(src lookahead.Source[string], table string) error {
	return s.SpoolCtx(context.Background(), src, table)
}

// SpoolCtx drains src into the specified table in sequence order, creating the table if necessary.
// In case of an error, the source is drained to prevent upstream blocking.
func (s *SqliteStore) SpoolCtx(ctx context.Context, src lookahead.Source[string], table string) error {
	if !tablePattern.MatchString(table) {
		lookahead.Drain(src)
		return fmt.Errorf("%w: %s", ErrBadTable, table)
	}
	log := s.log.With("table", table).Named("spool")
	log.Debug("Establishing connection")
	conn, err := s.db.Conn(ctx)
	if err != nil {
		lookahead.Drain(src)
		return err
	}
	defer func() {
		_ = conn.Close()
		log.Debug("DB connection closed")
	}()
	log.Debug("Ensuring the specified table is present")
	if _, err := conn.ExecContext(ctx, fmt.Sprintf(createTable, table)); err != nil {
		lookahead.Drain(src)
		return err
	}
	stmt, err := conn.PrepareContext(ctx, fmt.Sprintf("insert into %s (line) values (?)", table))
	if err != nil {
		log.Error("Failed to prepare insert statement", "error", err)
		lookahead.Drain(src)
		return err
	}
	defer func() {
		_ = stmt.Close()
	}()

	cancelled := false
	go func() {
		<-ctx.Done()
		cancelled = true
	}()

	log.Debug("Starting spool operation")
	err = lookahead.Each(src, func(line string, i int) error {
		if cancelled {
			log.Debug("Context cancelled")
			return lookahead.ErrAtEnd
		}
		if _, err := stmt.ExecContext(ctx, line); err != nil {
			log.Error("Failed to insert line", "offset", i, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		log.Error("Error spooling to DB, draining source", "error", err)
		lookahead.Drain(src)
		return err
	}
	return nil
}

// Replay returns a sized source over the lines previously spooled to the specified table, in insertion order.
// The row count is read up front, so the source reports an exact remaining count.
func (s *SqliteStore) Replay(table string) (lookahead.SizedSource[string], error) {
	if !tablePattern.MatchString(table) {
		return nil, fmt.Errorf("%w: %s", ErrBadTable, table)
	}
	log := s.log.With("table", table).Named("replay")
	var count int
	if err := s.db.QueryRow("select count(*) from " + table).Scan(&count); err != nil {
		log.Error("Failed to count lines", "error", err)
		return nil, err
	}
	rows, err := s.db.Query("select line from " + table + " order by seq_id")
	if err != nil {
		log.Error("Failed to query lines", "error", err)
		return nil, err
	}
	log.Debug("Replaying lines", "count", count)
	return &replaySource{log: log, rows: rows, remaining: count}, nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}

var _ lookahead.SizedSource[string] = (*replaySource)(nil)

type replaySource struct {
	log       hclog.Logger
	rows      *sql.Rows
	remaining int
}

func (r *replaySource) Next() (string, error) {
	if !r.rows.Next() {
		_ = r.rows.Close()
		if err := r.rows.Err(); err != nil {
			r.log.Error("Row iteration failed", "error", err)
			return lookahead.Err[string](err)
		}
		return lookahead.End[string]()
	}
	var line string
	if err := r.rows.Scan(&line); err != nil {
		_ = r.rows.Close()
		r.log.Error("Failed to scan line", "error", err)
		return lookahead.Err[string](err)
	}
	if r.remaining > 0 {
		r.remaining--
	}
	return line, nil
}

func (r *replaySource) Remaining() int {
	return r.remaining
}
