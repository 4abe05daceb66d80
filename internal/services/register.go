package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/repositories/repomanager"
)

var ErrValidation = errors.New("validation error")

// PasswordHasher produces the stored form of a password.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// RegisterUser creates accounts that AuthenticateUser can later log in.
type RegisterUser struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
}

func NewRegisterUser(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher) *RegisterUser {
	return &RegisterUser{db: db, repomanager: m, hasher: hasher}
}

// Execute hashes password and inserts the user. The email is stored exactly as
// given, matching the verbatim lookup done at login. An existing email yields
// common.ErrAlreadyExists.
func (s *RegisterUser) Execute(ctx context.Context, name, email, password string) (*models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrValidation
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			return common.ErrAlreadyExists
		case !errors.Is(err, common.ErrorNotFound):
			return fmt.Errorf("error searching user: %w", err)
		}

		created, err = repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
