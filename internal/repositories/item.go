package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// OwnedItemWriteRepository mints and unwinds owned items.
type OwnedItemWriteRepository struct {
	db *sqlx.DB
}

func NewOwnedItemWriteRepository(db *sqlx.DB) *OwnedItemWriteRepository {
	return &OwnedItemWriteRepository{db: db}
}

// Save mints a reward instance for an account.
func (r *OwnedItemWriteRepository) Save(ctx context.Context, item models.OwnedItemDB) error {
	query := `
		INSERT INTO owned_items (item_id, reward_id, account_id, is_for_sale, sale_price, created_at)
		VALUES ($1, $2, $3, FALSE, 0, NOW())
	`
	args := []any{item.ItemID, item.RewardID, item.AccountID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a minted item. Used only to unwind a case opening
// whose transaction record could not be persisted.
func (r *OwnedItemWriteRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	query := `DELETE FROM owned_items WHERE item_id = $1`

	res, err := r.db.ExecContext(ctx, query, itemID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{itemID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// OwnedItemReadRepository reads account inventories.
type OwnedItemReadRepository struct {
	db *sqlx.DB
}

func NewOwnedItemReadRepository(db *sqlx.DB) *OwnedItemReadRepository {
	return &OwnedItemReadRepository{db: db}
}

// ListByAccountID returns the account's items joined with their reward
// templates, newest first.
func (r *OwnedItemReadRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.OwnedItemView, error) {
	const query = `
		SELECT i.item_id, i.reward_id, r.name, r.description, r.image_url,
		       r.rarity, r.value, i.is_for_sale, i.sale_price, i.created_at
		FROM owned_items i
		JOIN reward_items r ON r.reward_id = i.reward_id
		WHERE i.account_id = $1
		ORDER BY i.created_at DESC, i.item_id
	`

	var items []models.OwnedItemView
	err := r.db.SelectContext(ctx, &items, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", len(items),
		"error", err,
	)

	return items, err
}
