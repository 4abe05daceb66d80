// Package app wires configuration, storage and services together and runs a
// single authctl command against them.
package app

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authkeeper/internal/auth"
	"github.com/dmitrijs2005/authkeeper/internal/config"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/services"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

type loginService interface {
	Execute(ctx context.Context, email, password string) (*services.AuthResponse, error)
}

type registerService interface {
	Execute(ctx context.Context, name, email, password string) (*models.User, error)
}

type revokeService interface {
	Execute(ctx context.Context, token string) (*models.RefreshToken, error)
}

type migrator interface {
	RunMigrations(context.Context, *sql.DB) error
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	migrator migrator
	login    loginService
	register registerService
	revoke   revokeService
	in       *bufio.Reader
	out      io.Writer
	prompt   io.Writer
}

// sqlOpen is a seam for tests that must not reach a real database.
var sqlOpen = sql.Open

func NewApp(c *config.Config) (*App, error) {
	if err := c.Auth.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	logger := logging.New(c.Env, os.Stderr)

	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	verifier := auth.NewBcryptVerifier()

	login := services.NewAuthenticateUser(rm.Users(db), rm.RefreshTokens(db), verifier,
		auth.NewHMACSigner(), timex.SystemClock{}, c.Auth)

	return &App{
		config:   c,
		logger:   logger.With("module", "authctl"),
		db:       db,
		migrator: rm,
		login:    login,
		register: services.NewRegisterUser(db, rm, verifier),
		revoke:   services.NewRevokeRefreshToken(rm.RefreshTokens(db)),
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		prompt:   os.Stderr,
	}, nil
}

func (app *App) Close() error {
	return app.db.Close()
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run executes cmd. SIGINT/SIGTERM cancel the context passed to services.
func (app *App) Run(ctx context.Context, cmd Command) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(ctx, cancelFunc)

	log := app.logger.With("command", cmd.Name)
	log.Debug(ctx, "running command", "args", len(cmd.Args))

	var err error
	switch cmd.Name {
	case CmdMigrate:
		err = app.migrate(ctx)
	case CmdAddUser:
		err = app.addUser(ctx, cmd)
	case CmdLogin:
		err = app.doLogin(ctx, cmd)
	case CmdRevoke:
		err = app.doRevoke(ctx, cmd)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}

	if err != nil {
		log.Error(ctx, "command failed", "error", err)
	}
	return err
}
