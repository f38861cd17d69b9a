package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SnapshotRow is the archived form of a snapshot, one row per difficulty
type SnapshotRow struct {
	Difficulty    string    `gorm:"primaryKey;size:16"`
	CalculatedAt  time.Time `gorm:"not null"`
	TotalEligible int       `gorm:"not null"`
	Entries       string    `gorm:"type:jsonb;not null"`
}

// TableName pins the archive table name
func (SnapshotRow) TableName() string {
	return "leaderboard_snapshots"
}

// GormConfig holds configuration for the postgres snapshot archive
type GormConfig struct {
	// DSN is a postgres connection string
	DSN string

	// DB overrides DSN with an already opened connection
	DB *gorm.DB
}

// gormRepository implements the Repository interface on postgres
type gormRepository struct {
	db *gorm.DB
}

// NewGorm opens the archive and migrates its table
func NewGorm(cfg *GormConfig) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	db := cfg.DB
	if db == nil {
		if cfg.DSN == "" {
			return nil, errors.New("dsn cannot be empty")
		}

		var err error
		db, err = gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot archive: %w", err)
		}
	}

	if err := db.AutoMigrate(&SnapshotRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot archive: %w", err)
	}

	return &gormRepository{db: db}, nil
}

// SaveSnapshot upserts the row for the snapshot's difficulty
func (r *gormRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	row, err := toRow(input.Snapshot)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "difficulty"}},
		DoUpdates: clause.AssignmentColumns([]string{"calculated_at", "total_eligible", "entries"}),
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to archive snapshot: %w", err)
	}

	return nil
}

// GetSnapshot reads the archived snapshot for a difficulty
func (r *gormRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.LeaderboardSnapshot, error) {
	if input == nil || input.Difficulty == "" {
		return nil, errors.New("input and difficulty cannot be empty")
	}

	var row SnapshotRow
	err := r.db.WithContext(ctx).First(&row, "difficulty = ?", string(input.Difficulty)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read archived snapshot: %w", err)
	}

	return fromRow(&row)
}

func toRow(snapshot *models.LeaderboardSnapshot) (*SnapshotRow, error) {
	entries, err := json.Marshal(snapshot.Entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot entries: %w", err)
	}

	return &SnapshotRow{
		Difficulty:    string(snapshot.Difficulty),
		CalculatedAt:  snapshot.CalculatedAt,
		TotalEligible: snapshot.TotalEligible,
		Entries:       string(entries),
	}, nil
}

func fromRow(row *SnapshotRow) (*models.LeaderboardSnapshot, error) {
	snapshot := &models.LeaderboardSnapshot{
		Difficulty:    models.Difficulty(row.Difficulty),
		CalculatedAt:  row.CalculatedAt.UTC(),
		TotalEligible: row.TotalEligible,
	}

	if err := json.Unmarshal([]byte(row.Entries), &snapshot.Entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot entries: %w", err)
	}

	return snapshot, nil
}
