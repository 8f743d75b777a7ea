package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		phone_number TEXT UNIQUE NOT NULL,
		full_name TEXT,
		password_hash TEXT NOT NULL,
		is_staff BOOLEAN NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		invite_code TEXT UNIQUE NOT NULL,
		invited_by_id TEXT,
		available_balance NUMERIC NOT NULL DEFAULT 0,
		subsidy_balance NUMERIC NOT NULL DEFAULT 0,
		level_active BOOLEAN NOT NULL DEFAULT 0,
		roulette_spins INTEGER NOT NULL DEFAULT 0,
		date_joined DATETIME,
		updated_at DATETIME
	);`)
}

func createLevelTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE levels (
		id TEXT PRIMARY KEY,
		ordinal INTEGER UNIQUE NOT NULL,
		name TEXT UNIQUE NOT NULL,
		deposit_value NUMERIC NOT NULL,
		daily_gain NUMERIC NOT NULL,
		monthly_gain NUMERIC NOT NULL,
		cycle_days INTEGER NOT NULL,
		image_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE user_levels (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		level_id TEXT NOT NULL,
		purchase_date DATETIME,
		is_active BOOLEAN NOT NULL DEFAULT 1
	);`)
}

func createDepositTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE deposits (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		proof_of_payment TEXT NOT NULL,
		is_approved BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createWithdrawalTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE withdrawals (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending',
		created_at DATETIME
	);`)
}

func createTaskTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tasks (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		earnings NUMERIC NOT NULL,
		completed_at DATETIME
	);`)
}

func createRouletteTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE roulettes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		prize NUMERIC NOT NULL,
		is_approved BOOLEAN NOT NULL DEFAULT 1,
		spin_date DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE roulette_settings (
		id TEXT PRIMARY KEY,
		prizes TEXT,
		updated_at DATETIME
	);`)
}

func createBankDetailsTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bank_details (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		bank_name TEXT NOT NULL,
		iban TEXT NOT NULL,
		account_holder_name TEXT NOT NULL,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE platform_bank_details (
		id TEXT PRIMARY KEY,
		bank_name TEXT NOT NULL,
		iban TEXT NOT NULL,
		account_holder_name TEXT NOT NULL
	);`)
}

func createPlatformSettingsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE platform_settings (
		id TEXT PRIMARY KEY,
		whats_app_link TEXT,
		history_text TEXT,
		deposit_instruction TEXT,
		withdrawal_instruction TEXT,
		updated_at DATETIME
	);`)
}

func seedUser(t *testing.T, repo *UserRepository, phone string) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:               uuid.New(),
		PhoneNumber:      phone,
		PasswordHash:     "hash",
		IsActive:         true,
		InviteCode:       uuid.New().String()[:8],
		AvailableBalance: decimal.Zero,
		SubsidyBalance:   decimal.Zero,
		DateJoined:       time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func seedUserWithBalance(t *testing.T, repo *UserRepository, phone, available string) *entities.User {
	t.Helper()
	u := seedUser(t, repo, phone)
	amount := decimal.RequireFromString(available)
	require.NoError(t, repo.AddToBalances(context.Background(), u.ID, amount, decimal.Zero))
	u.AvailableBalance = amount
	return u
}
