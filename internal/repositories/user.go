package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-mood-journal/internal/common"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

const userColumns = `user_id, username, email, password_hash, is_premium, premium_since,
	login_count, last_login_at, created_at, updated_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsernameOrEmail matches users whose username or email equals the given
// non-nil values. A nil value is ignored; both nil matches nothing.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = LOWER($2))
		ORDER BY created_at
		LIMIT 1
	`
	return r.get(ctx, query, username, email)
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.get(ctx, query, username)
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = LOWER($1)`
	return r.get(ctx, query, email)
}

func (r *UserReadRepository) get(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user and fills in the generated timestamps.
// A duplicate username or email yields common.ErrAlreadyExists.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, username, email, password_hash, is_premium, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if user.UserID == uuid.Nil {
		user.UserID = uuid.New()
	}
	args := []any{user.UserID, user.Username, user.Email, user.PasswordHash, user.IsPremium}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&user.CreatedAt, &user.UpdatedAt)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{user.UserID, user.Username, user.Email},
		"result", user.CreatedAt,
		"error", err,
	)

	if isUniqueViolation(err) {
		return common.ErrAlreadyExists
	}
	return err
}

// RecordLogin bumps the login counter and stamps the login time.
func (r *UserWriteRepository) RecordLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET login_count = login_count + 1, last_login_at = NOW(), updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, userID)
}

// Delete removes the user; journal entries go with it through the foreign key.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM users WHERE user_id = $1`
	return r.exec(ctx, query, userID)
}

// ActivatePremiumByEmail upgrades the user with the given email. See activatePremium.
func (r *UserWriteRepository) ActivatePremiumByEmail(ctx context.Context, email string) (*models.UserDB, bool, error) {
	return r.activatePremium(ctx, `SELECT `+userColumns+` FROM users WHERE email = LOWER($1) FOR UPDATE`, email)
}

// ActivatePremiumByID upgrades the user with the given id. See activatePremium.
func (r *UserWriteRepository) ActivatePremiumByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, bool, error) {
	return r.activatePremium(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userID)
}

// activatePremium locks the user row and sets is_premium once. The returned
// bool is true only for the call that performed the false to true transition.
// It runs in the request transaction when there is one, otherwise in its own.
func (r *UserWriteRepository) activatePremium(ctx context.Context, selectQuery string, arg any) (*models.UserDB, bool, error) {
	const updateQuery = `
		UPDATE users
		SET is_premium = TRUE, premium_since = NOW(), updated_at = NOW()
		WHERE user_id = $1 AND NOT is_premium
		RETURNING premium_since
	`

	var tx *sqlx.Tx
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}
	own := tx == nil
	if own {
		var err error
		tx, err = r.db.BeginTxx(ctx, nil)
		if err != nil {
			return nil, false, err
		}
		defer tx.Rollback()
	}

	var user models.UserDB
	err := tx.GetContext(ctx, &user, selectQuery, arg)
	logger.Log.Infow(
		"query", oneLine(selectQuery),
		"args", []any{arg},
		"result", user.IsPremium,
		"error", err,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, common.ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}

	activated := false
	if !user.IsPremium {
		var since time.Time
		err = tx.QueryRowxContext(ctx, updateQuery, user.UserID).Scan(&since)
		logger.Log.Infow(
			"query", oneLine(updateQuery),
			"args", []any{user.UserID},
			"result", since,
			"error", err,
		)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return nil, false, err
		default:
			activated = true
			user.IsPremium = true
			user.PremiumSince = &since
		}
	}

	if own {
		if err := tx.Commit(); err != nil {
			return nil, false, err
		}
	}
	return &user, activated, nil
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}
