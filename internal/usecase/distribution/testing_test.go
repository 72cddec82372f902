package distribution

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/repository"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// one in-memory database for all connections
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.StakeEntryModel{},
		&models.UserBalanceModel{},
		&models.TransactionRecordModel{},
		&models.VoucherStakeLinkModel{},
		&models.SponsorRelationshipModel{},
		&models.TeamEarningRecordModel{},
		&models.DailyYieldRecordModel{},
		&models.DistributionRunModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestUsecase(t *testing.T) (*DefaultDistributionUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewDefaultDistributionUsecase(
		repository.NewDefaultUnitOfWork(db),
		repository.NewDefaultStakeRepository(db),
		repository.NewDefaultVoucherRepository(db),
		repository.NewDefaultReferralRepository(db),
		repository.NewDefaultYieldLedgerRepository(db),
		repository.NewDefaultRunRepository(db),
		nil,
		nil,
	)
	return uc, db
}

func seedBalance(t *testing.T, db *gorm.DB, userID string, available, staked float64) {
	t.Helper()
	err := repository.NewDefaultBalanceRepository(db).CreateBalance(&domain.UserBalance{
		UserID:    userID,
		Available: available,
		Staked:    staked,
	})
	if err != nil {
		t.Fatalf("failed to seed balance for %s: %v", userID, err)
	}
}

func seedEntry(t *testing.T, db *gorm.DB, entry *domain.StakeEntry) *domain.StakeEntry {
	t.Helper()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Status == "" {
		entry.Status = domain.StakeStatusActive
	}
	if entry.Currency == "" {
		entry.Currency = domain.CurrencyUSDT
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().Add(-24 * time.Hour)
	}
	if err := repository.NewDefaultStakeRepository(db).CreateEntry(entry); err != nil {
		t.Fatalf("failed to seed stake entry: %v", err)
	}
	return entry
}

func seedSponsor(t *testing.T, db *gorm.DB, userID, sponsorID string) {
	t.Helper()
	err := repository.NewDefaultReferralRepository(db).CreateRelationship(&domain.SponsorRelationship{
		UserID:    userID,
		SponsorID: sponsorID,
	})
	if err != nil {
		t.Fatalf("failed to seed sponsor for %s: %v", userID, err)
	}
}

func seedYield(t *testing.T, db *gorm.DB, runDate time.Time, userID string, amount float64) {
	t.Helper()
	err := repository.NewDefaultYieldLedgerRepository(db).UpsertRecord(&domain.DailyYieldRecord{
		RunDate: runDate,
		UserID:  userID,
		Amount:  amount,
	})
	if err != nil {
		t.Fatalf("failed to seed yield for %s: %v", userID, err)
	}
}

func getBalance(t *testing.T, db *gorm.DB, userID string) *domain.UserBalance {
	t.Helper()
	balance, err := repository.NewDefaultBalanceRepository(db).GetByUserID(userID)
	if err != nil {
		t.Fatalf("failed to load balance for %s: %v", userID, err)
	}
	return balance
}

func getEntry(t *testing.T, db *gorm.DB, entryID string) *domain.StakeEntry {
	t.Helper()
	entry, err := repository.NewDefaultStakeRepository(db).GetEntryByID(entryID)
	if err != nil {
		t.Fatalf("failed to load entry %s: %v", entryID, err)
	}
	return entry
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
