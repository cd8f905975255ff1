package highscore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bestScore struct {
	PlayerID  string `gorm:"primaryKey"`
	Score     int
	UpdatedAt time.Time
}

func (bestScore) TableName() string { return "best_scores" }

// GormStore backs best scores with Postgres.
type GormStore struct {
	db *gorm.DB
}

func OpenGorm(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&bestScore{}); err != nil {
		return nil, fmt.Errorf("migrate best_scores: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Best(ctx context.Context, playerID string) (int, error) {
	var row bestScore
	err := g.db.WithContext(ctx).First(&row, "player_id = ?", playerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Score, nil
}

func (g *GormStore) Record(ctx context.Context, playerID string, score int) error {
	row := bestScore{PlayerID: playerID, Score: score, UpdatedAt: time.Now()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).
		Create(&row).Error
}
