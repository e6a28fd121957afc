package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	apphttp "github.com/chainsafe/gas-batcher/pkg/app/http"
)

// ErrNoSecret is returned when a cron validator is built without a secret.
var ErrNoSecret = errors.New("cron secret not configured")

// CronValidator validates HS256 tokens presented by the periodic trigger.
type CronValidator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewCronValidator creates a validator for tokens signed with secret.
// An empty issuer accepts any issuer.
func NewCronValidator(secret, issuer string) (*CronValidator, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &CronValidator{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

// ValidateToken checks signature, expiry and issuer and returns the claims.
func (v *CronValidator) ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

// IssueToken signs a token for subject valid for ttl. The batcher process
// uses it when calling the API, and tests use it directly.
func (v *CronValidator) IssueToken(subject string, ttl time.Duration) (string, error) {
	now := v.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// Middleware rejects requests without a valid bearer token and stores the
// token subject in the request context.
func (v *CronValidator) Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}
			claims, err := v.ValidateToken(raw)
			if err != nil {
				logger.Debug("rejected cron token", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claims.Subject)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(h[len(prefix):]), true
}
