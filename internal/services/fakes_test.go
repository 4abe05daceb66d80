package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/authkeeper/internal/auth"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	refreshtokensrepo "github.com/dmitrijs2005/authkeeper/internal/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/authkeeper/internal/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type fakeUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	getErr  error
	queried []string

	createOut *models.User
	createErr error
	created   []*models.User
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queried = append(f.queried, email)
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, u)
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

type fakeRefreshRepo struct {
	mu        sync.Mutex
	created   []*models.RefreshToken
	createErr error

	findOut *models.RefreshToken
	findErr error

	delErr  error
	deleted []string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, t *models.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, t)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRefreshRepo) records() []*models.RefreshToken {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.RefreshToken(nil), f.created...)
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error             { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }

type failingSigner struct {
	failOnCall int
	calls      int
}

func (s *failingSigner) Sign(payload map[string]any, secret []byte, opts auth.SignOptions) (string, error) {
	s.calls++
	if s.calls == s.failOnCall {
		return "", errBoom{}
	}
	return "signed", nil
}

type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(plaintext string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plaintext, nil
}
