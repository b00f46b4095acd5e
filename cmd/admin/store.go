package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-mood-journal/internal/common"
	"github.com/sbilibin2017/gw-mood-journal/internal/config"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/migrations"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/repositories"
	"github.com/sbilibin2017/gw-mood-journal/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// dbStore implements Store on top of the same repositories and services the
// HTTP server uses.
type dbStore struct {
	db     *sqlx.DB
	reader *repositories.UserReadRepository
	writer *repositories.UserWriteRepository
	auth   *services.AuthService
}

func openStore(ctx context.Context, configPath string) (Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	return newDBStore(db), nil
}

func newDBStore(db *sqlx.DB) *dbStore {
	reader := repositories.NewUserReadRepository(db, nil)
	writer := repositories.NewUserWriteRepository(db, nil)
	// admin commands never issue tokens
	return &dbStore{
		db:     db,
		reader: reader,
		writer: writer,
		auth:   services.NewAuthService(reader, writer, nil),
	}
}

func (s *dbStore) Migrate(ctx context.Context) error {
	return migrations.Up(ctx, s.db.DB)
}

func (s *dbStore) CreateUser(ctx context.Context, username, password, email string) error {
	return s.auth.Register(ctx, username, password, email)
}

func (s *dbStore) GrantPremium(ctx context.Context, email string) (bool, error) {
	_, activated, err := s.writer.ActivatePremiumByEmail(ctx, models.NormalizeEmail(email))
	if errors.Is(err, common.ErrNotFound) {
		return false, services.ErrUserDoesNotExist
	}
	return activated, err
}

func (s *dbStore) DeleteUser(ctx context.Context, login string) error {
	user, err := s.reader.GetByUsernameOrEmail(ctx, &login, &login)
	if errors.Is(err, common.ErrNotFound) {
		return services.ErrUserDoesNotExist
	}
	if err != nil {
		return err
	}
	return s.auth.DeleteAccount(ctx, user.UserID)
}

func (s *dbStore) Close() error {
	return s.db.Close()
}
