package service

import (
	"context"

	"saapadu/config"
	"saapadu/shared/constant"
	"saapadu/shared/password"
)

// Authenticator decides whether an email and password pair may open a session.
type Authenticator interface {
	Authenticate(ctx context.Context, email, secret string) bool
}

// CredentialSource supplies the admin credential saved from the settings page.
type CredentialSource interface {
	Credential(ctx context.Context) (email, secret string)
}

// CredentialAuthenticator accepts the stored admin credential, falling back to the
// configured default pair for whichever half was never saved.
type CredentialAuthenticator struct {
	source CredentialSource
	cfg    *config.Config
}

func NewCredentialAuthenticator(source CredentialSource, cfg *config.Config) Authenticator {
	return &CredentialAuthenticator{
		source: source,
		cfg:    cfg,
	}
}

func (a *CredentialAuthenticator) Authenticate(ctx context.Context, email, secret string) bool {
	if email == constant.Empty || secret == constant.Empty {
		return false
	}

	storedEmail, storedSecret := a.source.Credential(ctx)

	if storedEmail == constant.Empty {
		storedEmail = a.cfg.Admin.DefaultEmail
	}

	if email != storedEmail {
		return false
	}

	if storedSecret == constant.Empty {
		storedSecret = a.cfg.Admin.DefaultPassword
	}

	return password.Matches(secret, storedSecret)
}
