package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the row as stored.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("constraint", r.db.errorClassificator.Constraint(err)).Msg("user already exists")
			if strings.Contains(r.db.errorClassificator.Constraint(err), "email") {
				return models.User{}, ErrEmailAlreadyExists
			}
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByLogin matches identifier against the username or the
// lower-cased email in one query.
func (r *userRepository) FindUserByLogin(ctx context.Context, identifier string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByLogin", sq.Or{
		sq.Eq{"username": identifier},
		sq.Eq{"email": strings.ToLower(identifier)},
	})
}

// FindUserByUsernameOrEmail returns any user that already holds username or
// email. It backs the uniqueness check of signup.
//
// Login resolves one identifier against both columns, so the check is made
// across them too: a username may not equal an existing email and an email
// may not equal an existing username, case-folded the way login folds it.
func (r *userRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error) {
	email = strings.ToLower(email)
	return r.findUser(ctx, "*userRepository.FindUserByUsernameOrEmail", sq.Or{
		sq.Eq{"username": username},
		sq.Eq{"email": email},
		sq.Eq{"email": strings.ToLower(username)},
		sq.Expr("LOWER(username) = ?", email),
	})
}

// FindUserByID returns the user referenced by a session token subject.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

// findUser runs a single-row user lookup.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - any other error → wrapped [ErrExecutingQuery].
func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		scanTime(&user.CreatedAt),
		scanTime(&user.UpdatedAt),
	)
	return user, err
}
