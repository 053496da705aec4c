package identity

import (
	"context"

	"github.com/yuhsuan-lin/daigou-bot/constant"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

// TokenVerifier verifies an id token against the platform's OAuth endpoint.
// Satisfied by the LINE client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken, clientID string) (string, error)
}

type SettingsProvider interface {
	Get(ctx context.Context, key string) (string, bool)
}

// IdentityApp authenticates callers of admin actions. Every failure path is
// fail-closed: no configuration means no admin access, never open access.
type IdentityApp interface {
	Verify(ctx context.Context, idToken string) (string, bool)
	IsAdmin(ctx context.Context, subject string) bool
}

type identityAppImpl struct {
	settings SettingsProvider
	verifier TokenVerifier
}

func NewIdentityApp(settings SettingsProvider, verifier TokenVerifier) IdentityApp {
	return &identityAppImpl{settings: settings, verifier: verifier}
}

// Verify resolves an id token to the authenticated subject id.
func (s *identityAppImpl) Verify(ctx context.Context, idToken string) (string, bool) {
	if idToken == "" || idToken == constant.TestSentinelToken {
		return "", false
	}

	clientID, ok := s.settings.Get(ctx, constant.ConfigKeyLineChannelID)
	if !ok {
		logger.Warn("[Verify] channel id not configured, admin auth disabled")
		return "", false
	}

	subject, err := s.verifier.VerifyIDToken(ctx, idToken, clientID)
	if err != nil {
		logger.Info("[Verify] token verification failed", zap.String("error", err.Error()))
		return "", false
	}
	return subject, true
}

// IsAdmin reports whether a verified subject is the configured admin. Callers
// resolve the subject through Verify first so a token is only verified once.
func (s *identityAppImpl) IsAdmin(ctx context.Context, subject string) bool {
	if subject == "" {
		return false
	}

	adminID, ok := s.settings.Get(ctx, constant.ConfigKeyAdminID)
	if !ok {
		return false
	}
	return subject == adminID
}
