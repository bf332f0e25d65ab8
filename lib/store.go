package lib

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Store keeps parse results in Postgres so other tools can query which
// names a source file binds and which files failed to parse.
type Store struct {
	db      *sql.DB
	queries storeQueries
}

type StoreOptions struct {
	// Schema the tables live in. Empty means the connection's search_path.
	Schema string
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type storeQueries struct {
	createSchema     string
	createSources    string
	createStatements string
	deleteStatements string
	upsertSource     string
	insertStatement  string
	selectNames      string
}

func OpenStore(connectionString string, opts StoreOptions) (*Store, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, queries: newStoreQueries(opts.Schema)}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the tables if they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	return migrateStore(ctx, s.db, s.queries)
}

// SaveSources replaces whatever was stored for each file. Either every file
// is saved or none is.
func (s *Store) SaveSources(ctx context.Context, files []SourceFile) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return describeStoreError("begin", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, f := range files {
		if err = saveSource(ctx, tx, s.queries, f); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return describeStoreError("commit", err)
	}
	return nil
}

// BoundNames lists the names bound by let statements in the stored source,
// in source order.
func (s *Store) BoundNames(ctx context.Context, sourceName string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.queries.selectNames, sourceName)
	if err != nil {
		return nil, describeStoreError("names", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, describeStoreError("names", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, describeStoreError("names", err)
	}
	return names, nil
}

func newStoreQueries(schema string) storeQueries {
	sources := qualifiedTable(schema, "monkey_sources")
	statements := qualifiedTable(schema, "monkey_statements")

	q := storeQueries{
		createSources: "CREATE TABLE IF NOT EXISTS " + sources +
			" (name TEXT PRIMARY KEY, source TEXT NOT NULL, errors TEXT[] NOT NULL)",
		createStatements: "CREATE TABLE IF NOT EXISTS " + statements +
			" (source_name TEXT NOT NULL, position INT NOT NULL, kind TEXT NOT NULL," +
			" name TEXT, literal TEXT NOT NULL, PRIMARY KEY (source_name, position))",
		deleteStatements: "DELETE FROM " + statements + " WHERE source_name = $1",
		upsertSource: "INSERT INTO " + sources + " (name, source, errors) VALUES ($1, $2, $3)" +
			" ON CONFLICT (name) DO UPDATE SET source = EXCLUDED.source, errors = EXCLUDED.errors",
		insertStatement: "INSERT INTO " + statements +
			" (source_name, position, kind, name, literal) VALUES ($1, $2, $3, $4, $5)",
		selectNames: "SELECT name FROM " + statements +
			" WHERE source_name = $1 AND kind = 'let' ORDER BY position",
	}
	if schema != "" {
		q.createSchema = "CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(schema)
	}
	return q
}

func qualifiedTable(schema string, table string) string {
	if schema == "" {
		return pq.QuoteIdentifier(table)
	}
	return pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(table)
}

func migrateStore(ctx context.Context, ex execer, q storeQueries) error {
	stmts := []string{q.createSources, q.createStatements}
	if q.createSchema != "" {
		stmts = append([]string{q.createSchema}, stmts...)
	}
	for _, stmt := range stmts {
		if _, err := ex.ExecContext(ctx, stmt); err != nil {
			return describeStoreError("migrate", err)
		}
	}
	return nil
}

func saveSource(ctx context.Context, ex execer, q storeQueries, f SourceFile) error {
	_, err := ex.ExecContext(ctx, q.deleteStatements, f.Name)
	if err != nil {
		return describeStoreError("save "+f.Name, err)
	}

	errs := f.Errors
	if errs == nil {
		errs = []string{}
	}
	_, err = ex.ExecContext(ctx, q.upsertSource, f.Name, f.Source, pq.Array(errs))
	if err != nil {
		return describeStoreError("save "+f.Name, err)
	}

	if f.Program == nil {
		return nil
	}
	for i, stmt := range f.Program.Statements {
		var name sql.NullString
		if let, ok := stmt.(*LetStatement); ok && let.Name != nil {
			name = sql.NullString{String: let.Name.Value, Valid: true}
		}
		_, err = ex.ExecContext(ctx, q.insertStatement, f.Name, i, statementKind(stmt), name, stmt.String())
		if err != nil {
			return describeStoreError("save "+f.Name, err)
		}
	}
	return nil
}

// describeStoreError adds the Postgres error class to errors coming back
// from the server so a failed index run says more than "pq: ...".
func describeStoreError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %s (%s): %w", op, pqErr.Message, pqErr.Code.Name(), err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
