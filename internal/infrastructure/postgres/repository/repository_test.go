package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
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
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.StakeEntryModel{},
		&models.SponsorRelationshipModel{},
		&models.DailyYieldRecordModel{},
		&models.DistributionRunModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestRunRepository_SameStageAndDateConflicts(t *testing.T) {
	repo := NewDefaultRunRepository(newTestDB(t))
	runDate := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	first := &domain.DistributionRun{Stage: domain.RunStageROI, RunDate: runDate}
	if err := repo.CreateRun(first); err != nil {
		t.Fatalf("unexpected error on first run: %v", err)
	}

	// midnight of the same day collides after truncation
	second := &domain.DistributionRun{Stage: domain.RunStageROI, RunDate: domain.RunDay(runDate)}
	if err := repo.CreateRun(second); !errors.Is(err, domain.ErrRunAlreadyCompleted) {
		t.Fatalf("expected ErrRunAlreadyCompleted, got %v", err)
	}

	// different stage on the same day is fine
	team := &domain.DistributionRun{Stage: domain.RunStageTeam, RunDate: runDate}
	if err := repo.CreateRun(team); err != nil {
		t.Fatalf("unexpected error for team stage: %v", err)
	}
}

func TestRunRepository_DeleteFreesStageAndDate(t *testing.T) {
	repo := NewDefaultRunRepository(newTestDB(t))
	runDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	run := &domain.DistributionRun{Stage: domain.RunStageTeam, RunDate: runDate}
	if err := repo.CreateRun(run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeleteRun(run); err != nil {
		t.Fatalf("unexpected error on delete: %v", err)
	}

	retry := &domain.DistributionRun{Stage: domain.RunStageTeam, RunDate: runDate}
	if err := repo.CreateRun(retry); err != nil {
		t.Fatalf("expected slot freed for retry, got %v", err)
	}
}

func TestYieldLedger_UpsertReplacesAmountForSameKey(t *testing.T) {
	repo := NewDefaultYieldLedgerRepository(newTestDB(t))
	runDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	if err := repo.UpsertRecord(&domain.DailyYieldRecord{RunDate: runDate, UserID: "user-1", Amount: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpsertRecord(&domain.DailyYieldRecord{RunDate: runDate, UserID: "user-1", Amount: 25}); err != nil {
		t.Fatalf("unexpected error on upsert: %v", err)
	}

	records, err := repo.GetByRunDate(runDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected single row per (date, user), got %d", len(records))
	}
	if records[0].Amount != 25 {
		t.Fatalf("expected amount replaced with 25, got %v", records[0].Amount)
	}
}

func TestYieldLedger_GetByRunDateSkipsZeroAndOtherDays(t *testing.T) {
	repo := NewDefaultYieldLedgerRepository(newTestDB(t))
	runDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	if err := repo.UpsertRecord(&domain.DailyYieldRecord{RunDate: runDate, UserID: "user-1", Amount: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpsertRecord(&domain.DailyYieldRecord{RunDate: runDate.AddDate(0, 0, -1), UserID: "user-2", Amount: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpsertRecord(&domain.DailyYieldRecord{RunDate: runDate, UserID: "user-3", Amount: 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := repo.GetByRunDate(runDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].UserID != "user-3" {
		t.Fatalf("expected only user-3 for the date, got %+v", records)
	}
}

func TestReferralRepository_SecondSponsorRejected(t *testing.T) {
	repo := NewDefaultReferralRepository(newTestDB(t))

	if err := repo.CreateRelationship(&domain.SponsorRelationship{UserID: "user-1", SponsorID: "user-a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := repo.CreateRelationship(&domain.SponsorRelationship{UserID: "user-1", SponsorID: "user-b"})
	if !errors.Is(err, domain.ErrSponsorExists) {
		t.Fatalf("expected ErrSponsorExists, got %v", err)
	}

	sponsor, err := repo.GetSponsorByUserID("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sponsor == nil || sponsor.SponsorID != "user-a" {
		t.Fatalf("expected original sponsor kept, got %+v", sponsor)
	}
}

func TestStakeRepository_ActiveEntriesOrderedOldestFirst(t *testing.T) {
	repo := NewDefaultStakeRepository(newTestDB(t))
	now := time.Now()

	newer := &domain.StakeEntry{ID: "newer", UserID: "user-1", Principal: 100, Status: domain.StakeStatusActive, CreatedAt: now}
	older := &domain.StakeEntry{ID: "older", UserID: "user-1", Principal: 100, Status: domain.StakeStatusActive, CreatedAt: now.Add(-time.Hour)}
	done := &domain.StakeEntry{ID: "done", UserID: "user-1", Principal: 100, Status: domain.StakeStatusCompleted, CreatedAt: now.Add(-2 * time.Hour)}
	for _, entry := range []*domain.StakeEntry{newer, older, done} {
		if err := repo.CreateEntry(entry); err != nil {
			t.Fatalf("failed to create entry %s: %v", entry.ID, err)
		}
	}

	entries, err := repo.GetActiveEntriesByUserID("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 active entries, got %d", len(entries))
	}
	if entries[0].ID != "older" || entries[1].ID != "newer" {
		t.Fatalf("expected oldest first, got %s then %s", entries[0].ID, entries[1].ID)
	}
}
