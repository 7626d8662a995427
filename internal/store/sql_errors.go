package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. Repositories use it to turn driver errors
// into store sentinel errors without depending on a particular driver.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and everything the classifier
	// does not recognise. Such errors surface as internal failures.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that a UNIQUE constraint rejected the write.
	UniqueViolation

	// ConstraintViolation indicates a CHECK or NOT NULL constraint failure.
	ConstraintViolation
)

// ErrorClassificator classifies errors of one database driver.
type ErrorClassificator interface {
	// Classify maps err to an [ErrorClassification].
	Classify(err error) ErrorClassification

	// Constraint returns the name of the violated constraint, or "" when err
	// is not a constraint violation. On PostgreSQL this is the constraint
	// name ("users_email_key"), on SQLite the failing column
	// ("users.email").
	Constraint(err error) string
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// Constraint implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Class 23 (integrity constraint violation) codes are classified; every other
// code is [Unclassified].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return UniqueViolation

	// Class 23: check, not null and generic integrity violations
	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation:
		return ConstraintViolation
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator] using the extended result code.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if err == nil || !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
		return ConstraintViolation
	}

	return Unclassified
}

// Constraint implements [ErrorClassificator]. SQLite reports the column in
// the message, e.g. "UNIQUE constraint failed: users.email".
func (c *SQLiteErrorClassifier) Constraint(err error) string {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return ""
	}

	_, target, found := strings.Cut(sqliteErr.Error(), "constraint failed: ")
	if !found {
		return ""
	}

	return target
}
