package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// CaseReadRepository reads the immutable case catalog.
type CaseReadRepository struct {
	db *sqlx.DB
}

func NewCaseReadRepository(db *sqlx.DB) *CaseReadRepository {
	return &CaseReadRepository{db: db}
}

// GetActive returns purchasable cases in stable order by id.
func (r *CaseReadRepository) GetActive(ctx context.Context) ([]models.CaseDB, error) {
	const query = `
		SELECT case_id, name, description, image_url, price, currency, rarity, is_active, created_at
		FROM cases
		WHERE is_active = TRUE
		ORDER BY case_id
	`

	var cases []models.CaseDB
	err := r.db.SelectContext(ctx, &cases, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(cases),
		"error", err,
	)

	return cases, err
}

// GetByID returns a case by id regardless of its active flag, or nil
// when no such case exists.
func (r *CaseReadRepository) GetByID(ctx context.Context, caseID uuid.UUID) (*models.CaseDB, error) {
	const query = `
		SELECT case_id, name, description, image_url, price, currency, rarity, is_active, created_at
		FROM cases
		WHERE case_id = $1
	`

	var c models.CaseDB
	err := r.db.GetContext(ctx, &c, query, caseID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{caseID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}

// RewardReadRepository reads the reward template pool.
type RewardReadRepository struct {
	db *sqlx.DB
}

func NewRewardReadRepository(db *sqlx.DB) *RewardReadRepository {
	return &RewardReadRepository{db: db}
}

// GetPool returns all reward templates in stable order by id.
func (r *RewardReadRepository) GetPool(ctx context.Context) ([]models.RewardItemDB, error) {
	const query = `
		SELECT reward_id, name, description, image_url, rarity, value, weight
		FROM reward_items
		ORDER BY reward_id
	`

	var pool []models.RewardItemDB
	err := r.db.SelectContext(ctx, &pool, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(pool),
		"error", err,
	)

	return pool, err
}
