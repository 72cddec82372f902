package postgres

import (
	"log"

	"github.com/LavaJover/shvark-reward-service/internal/config"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RewardConfig) *gorm.DB {
	dsn := cfg.RewardDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.StakeEntryModel{},
		&models.UserBalanceModel{},
		&models.TransactionRecordModel{},
		&models.VoucherStakeLinkModel{},
		&models.SponsorRelationshipModel{},
		&models.TeamEarningRecordModel{},
		&models.DailyYieldRecordModel{},
		&models.DistributionRunModel{},
	)

	return db
}
