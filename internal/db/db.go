package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-book/internal/config"
	"github.com/BruksfildServices01/barber-book/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Storage-level backstop for double booking: concurrent inserts into the
	// same window that slip past the transactional check fail here with
	// SQLSTATE 23P01. Cancelled rows never block a slot. Without this
	// constraint two creates into an empty window both lock zero rows and
	// both pass the check, so a failure here is fatal.
	if err := db.Exec(btreeGistDDL).Error; err != nil {
		log.Fatal("failed to create btree_gist extension", zap.Error(err))
	}
	if err := db.Exec(slotExclusionDDL).Error; err != nil {
		log.Fatal("failed to create slot exclusion constraint", zap.Error(err))
	}

	return db
}

const btreeGistDDL = `CREATE EXTENSION IF NOT EXISTS btree_gist`

// start_time/end_time migrate as timestamptz, so the range type must be
// tstzrange; tsrange would fail to resolve at DDL time.
const slotExclusionDDL = `
    DO $$
    BEGIN
        ALTER TABLE appointments
            ADD CONSTRAINT appointments_barber_slot_excl
            EXCLUDE USING gist (
                barber_id WITH =,
                tstzrange(start_time, end_time) WITH &&
            ) WHERE (status <> 'CANCELLED');
    EXCEPTION
        WHEN duplicate_object THEN NULL;
        WHEN duplicate_table THEN NULL;
    END $$;
`
