package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells which constraint a failed write violated.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and anything that is not a
	// recognised constraint violation.
	Unclassified ErrorClassification = iota
	// UsernameTaken is a unique violation on a username column.
	UsernameTaken
	// EmailTaken is a unique violation on an email column.
	EmailTaken
	// ReferenceMissing is a foreign key violation.
	ReferenceMissing
)

// ErrorClassificator maps driver errors onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code and constraint name returned by the pgx
// driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		// constraint names follow <table>_<column>_key
		return classifyUniqueColumn(pgErr.ConstraintName + " " + pgErr.Detail)
	case pgerrcode.ForeignKeyViolation:
		return ReferenceMissing
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. go-sqlite3 reports the violated
// columns in the message, e.g. "UNIQUE constraint failed: users.email".
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return classifyUniqueColumn(sqliteErr.Error())
	case sqlite3.ErrConstraintForeignKey:
		return ReferenceMissing
	}

	return Unclassified
}

func classifyUniqueColumn(description string) ErrorClassification {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "email"):
		return EmailTaken
	case strings.Contains(d, "username"):
		return UsernameTaken
	default:
		return Unclassified
	}
}
