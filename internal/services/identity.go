package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// Error variables
var (
	// ErrIdentityInvalid is returned when the external id is absent or malformed.
	ErrIdentityInvalid = errors.New("invalid external identity")
)

const (
	referralCodeLen      = 8
	referralCodeCharset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referralCodeAttempts = 5
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByTelegramID(ctx context.Context, telegramID string) (*models.AccountDB, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, account models.AccountDB) error
	Touch(ctx context.Context, accountID uuid.UUID, username, firstName, lastName *string) error
}

// TokenIssuer defines an interface for issuing session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, accountID uuid.UUID, telegramID string) (string, error)
}

// IdentityService maps chat-platform identity assertions to internal
// accounts and issues session tokens. The platform payload is trusted
// as-is; its authenticity is not cryptographically verified.
type IdentityService struct {
	reader AccountReader
	writer AccountWriter
	jwt    TokenIssuer
}

// NewIdentityService creates a new IdentityService instance.
func NewIdentityService(reader AccountReader, writer AccountWriter, jwt TokenIssuer) *IdentityService {
	return &IdentityService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Resolve maps an external id to an account, creating one on first
// sight with a collision-checked referral code and zero balances, and
// returns the account together with a fresh session token. Resolving
// the same external id again updates last-seen and mutable profile
// fields only; two accounts are never merged.
func (svc *IdentityService) Resolve(ctx context.Context, telegramID string, username, firstName, lastName, referredBy *string) (*models.AccountDB, string, error) {
	if !validTelegramID(telegramID) {
		logger.Log.Warnw("malformed external id", "telegram_id", telegramID)
		return nil, "", ErrIdentityInvalid
	}

	account, err := svc.reader.GetByTelegramID(ctx, telegramID)
	if err != nil {
		logger.Log.Errorw("failed to look up account", "telegram_id", telegramID, "err", err)
		return nil, "", err
	}

	if account == nil {
		code, err := svc.newReferralCode(ctx)
		if err != nil {
			logger.Log.Errorw("failed to generate referral code", "err", err)
			return nil, "", err
		}

		account = &models.AccountDB{
			AccountID:    uuid.New(),
			TelegramID:   telegramID,
			Username:     username,
			FirstName:    firstName,
			LastName:     lastName,
			ReferralCode: code,
			ReferredBy:   referredBy,
			IsActive:     true,
		}
		if err := svc.writer.Save(ctx, *account); err != nil {
			logger.Log.Errorw("failed to save account", "telegram_id", telegramID, "err", err)
			return nil, "", err
		}
		logger.Log.Infow("account created", "account_id", account.AccountID, "telegram_id", telegramID)
	} else {
		if err := svc.writer.Touch(ctx, account.AccountID, username, firstName, lastName); err != nil {
			logger.Log.Errorw("failed to update last login", "account_id", account.AccountID, "err", err)
			return nil, "", err
		}
		if username != nil {
			account.Username = username
		}
		if firstName != nil {
			account.FirstName = firstName
		}
		if lastName != nil {
			account.LastName = lastName
		}
	}

	token, err := svc.jwt.Generate(ctx, account.AccountID, account.TelegramID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "account_id", account.AccountID, "err", err)
		return nil, "", err
	}

	return account, token, nil
}

// newReferralCode draws random codes until one is free. The database
// unique constraint still backs the check against races.
func (svc *IdentityService) newReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		code, err := randomCode(referralCodeLen)
		if err != nil {
			return "", err
		}

		exists, err := svc.reader.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate unique referral code after %d attempts", referralCodeAttempts)
}

func randomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = referralCodeCharset[int(b)%len(referralCodeCharset)]
	}
	return string(buf), nil
}

// validTelegramID accepts non-empty numeric strings only.
func validTelegramID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
