package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ezdrop/ezdrop-backend/internal/models"
)

func setupItemPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS accounts (
		account_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		telegram_id VARCHAR(64) NOT NULL UNIQUE,
		referral_code VARCHAR(8) NOT NULL UNIQUE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		last_login TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS reward_items (
		reward_id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		rarity VARCHAR(20) NOT NULL,
		value NUMERIC(20,2) NOT NULL,
		weight NUMERIC(10,4) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS owned_items (
		item_id UUID PRIMARY KEY,
		reward_id UUID NOT NULL REFERENCES reward_items(reward_id),
		account_id UUID NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
		is_for_sale BOOLEAN NOT NULL DEFAULT FALSE,
		sale_price NUMERIC(20,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func seedItemAccount(t *testing.T, db *sqlx.DB) uuid.UUID {
	accountID := uuid.New()
	_, err := db.Exec(`INSERT INTO accounts (account_id, telegram_id, referral_code) VALUES ($1, $2, $3)`,
		accountID, accountID.String()[:8], accountID.String()[:8])
	assert.NoError(t, err)
	return accountID
}

func seedReward(t *testing.T, db *sqlx.DB, name, rarity string, value float64) uuid.UUID {
	rewardID := uuid.New()
	_, err := db.Exec(`
		INSERT INTO reward_items (reward_id, name, rarity, value, weight)
		VALUES ($1, $2, $3, $4, 1)`, rewardID, name, rarity, value)
	assert.NoError(t, err)
	return rewardID
}

func TestOwnedItemWriteRepository_SaveAndDelete(t *testing.T) {
	db, teardown := setupItemPostgresContainer(t)
	defer teardown()

	accountID := seedItemAccount(t, db)
	rewardID := seedReward(t, db, "Cyber Sword", models.RarityCommon, 10)

	repo := NewOwnedItemWriteRepository(db)
	ctx := context.Background()

	item := models.OwnedItemDB{
		ItemID:    uuid.New(),
		RewardID:  rewardID,
		AccountID: accountID,
	}
	assert.NoError(t, repo.Save(ctx, item))

	var count int
	assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM owned_items WHERE item_id=$1`, item.ItemID))
	assert.Equal(t, 1, count)

	assert.NoError(t, repo.Delete(ctx, item.ItemID))

	assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM owned_items WHERE item_id=$1`, item.ItemID))
	assert.Equal(t, 0, count)
}

func TestOwnedItemReadRepository_ListByAccountID(t *testing.T) {
	db, teardown := setupItemPostgresContainer(t)
	defer teardown()

	accountID := seedItemAccount(t, db)
	other := seedItemAccount(t, db)

	swordID := seedReward(t, db, "Cyber Sword", models.RarityCommon, 10)
	gemID := seedReward(t, db, "Quantum Gem", models.RarityLegendary, 1000)

	writeRepo := NewOwnedItemWriteRepository(db)
	readRepo := NewOwnedItemReadRepository(db)
	ctx := context.Background()

	first := models.OwnedItemDB{ItemID: uuid.New(), RewardID: swordID, AccountID: accountID}
	assert.NoError(t, writeRepo.Save(ctx, first))
	// Make the second insert strictly newer than the first.
	_, err := db.Exec(`UPDATE owned_items SET created_at = created_at - INTERVAL '1 hour' WHERE item_id=$1`, first.ItemID)
	assert.NoError(t, err)

	second := models.OwnedItemDB{ItemID: uuid.New(), RewardID: gemID, AccountID: accountID}
	assert.NoError(t, writeRepo.Save(ctx, second))

	assert.NoError(t, writeRepo.Save(ctx, models.OwnedItemDB{ItemID: uuid.New(), RewardID: swordID, AccountID: other}))

	inventory, err := readRepo.ListByAccountID(ctx, accountID)
	assert.NoError(t, err)
	assert.Len(t, inventory, 2)

	// Newest first, joined with the reward template.
	assert.Equal(t, second.ItemID, inventory[0].ItemID)
	assert.Equal(t, "Quantum Gem", inventory[0].Name)
	assert.Equal(t, models.RarityLegendary, inventory[0].Rarity)
	assert.Equal(t, 1000.0, inventory[0].Value)
	assert.Equal(t, first.ItemID, inventory[1].ItemID)
	assert.Equal(t, "Cyber Sword", inventory[1].Name)

	empty, err := readRepo.ListByAccountID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
