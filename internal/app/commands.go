package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/auth"
	"github.com/dmitrijs2005/authkeeper/internal/common"
)

type loginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginOutput struct {
	User         loginUser `json:"user"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
}

type tokenInfo struct {
	Subject   string    `json:"subject"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

type verifyOutput struct {
	Access  tokenInfo `json:"access"`
	Refresh tokenInfo `json:"refresh"`
}

func (app *App) migrate(ctx context.Context) error {
	if err := app.migrator.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	app.logger.Info(ctx, "migrations applied")
	return nil
}

func (app *App) addUser(ctx context.Context, cmd Command) error {
	name, email := cmd.Args[0], cmd.Args[1]

	password, err := GetPassword(app.in, app.prompt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := app.register.Execute(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	app.logger.Info(ctx, "user created", "id", user.ID, "email", user.Email)
	return nil
}

func (app *App) doLogin(ctx context.Context, cmd Command) error {
	email := cmd.Args[0]

	password, err := GetPassword(app.in, app.prompt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := app.login.Execute(ctx, email, string(password))
	if err != nil {
		return err
	}
	app.logger.Info(ctx, "login succeeded", "email", email)

	out := loginOutput{
		User:         loginUser{Name: resp.User.Name, Email: resp.User.Email},
		Token:        resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if err := app.writeJSON(out); err != nil {
		return err
	}

	if !cmd.Verify {
		return nil
	}

	access, err := auth.ParseAccessToken(resp.AccessToken, []byte(app.config.Auth.AccessTokenSecret))
	if err != nil {
		return fmt.Errorf("access token does not verify: %w", err)
	}
	refresh, err := auth.ParseRefreshToken(resp.RefreshToken, []byte(app.config.Auth.RefreshTokenSecret))
	if err != nil {
		return fmt.Errorf("refresh token does not verify: %w", err)
	}

	return app.writeJSON(verifyOutput{
		Access:  tokenInfo{Subject: access.Subject, ExpiresAt: access.ExpiresAt.Time},
		Refresh: tokenInfo{Subject: refresh.Subject, Email: refresh.Email, ExpiresAt: refresh.ExpiresAt.Time},
	})
}

func (app *App) doRevoke(ctx context.Context, cmd Command) error {
	rec, err := app.revoke.Execute(ctx, cmd.Args[0])
	if err != nil {
		return err
	}
	app.logger.Info(ctx, "refresh token revoked", "user_id", rec.UserID)
	return nil
}

func (app *App) writeJSON(v any) error {
	enc := json.NewEncoder(app.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
