package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Error variables
var (
	// ErrTokenExpired is returned when the embedded expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned when the signature does not verify
	// or the payload is structurally malformed.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the identity a session token was issued for.
type Claims struct {
	AccountID  uuid.UUID // Internal account id
	TelegramID string    // Originating chat-platform id
}

type tokenClaims struct {
	AccountID  string `json:"account_id"`
	TelegramID string `json:"telegram_id"`
	gojwt.RegisteredClaims
}

// JWT issues and verifies signed session tokens. Verification is pure:
// there is no server-side state and no revocation list, so rotating the
// secret is the only way to invalidate outstanding tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
}

// Option configures a JWT instance.
type Option func(*JWT)

// WithSecretKey sets the process-wide signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the token validity window.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.exp = exp }
}

// New creates a JWT instance. The default validity window is 30 days.
func New(opts ...Option) *JWT {
	j := &JWT{
		exp: 30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed session token for the given account.
func (j *JWT) Generate(ctx context.Context, accountID uuid.UUID, telegramID string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		AccountID:  accountID.String(),
		TelegramID: telegramID,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(now.Add(j.exp)),
			IssuedAt:  gojwt.NewNumericDate(now),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Validate checks the token signature and expiry.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses the token string and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims tokenClaims
	token, err := gojwt.ParseWithClaims(tokenString, &claims, func(token *gojwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	return &Claims{
		AccountID:  accountID,
		TelegramID: claims.TelegramID,
	}, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
