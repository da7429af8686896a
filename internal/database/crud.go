package database

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryPageSize is the fixed number of interactions per history page.
const HistoryPageSize = 20

// SQLite only supports one writer at a time, so we need a lock
// whenever we write to the database
var dbMutex sync.Mutex

func CreateInteraction(ctx context.Context, db *gorm.DB, interaction *Interaction) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	if err := db.WithContext(ctx).Create(interaction).Error; err != nil {
		slog.Error("error creating interaction", "kind", interaction.Kind, "error", err)
		return err
	}
	return nil
}

// ListInteractions returns one page of interactions, newest first. Pages are
// 1-based; values below 1 are clamped to the first page.
func ListInteractions(ctx context.Context, db *gorm.DB, page int) ([]Interaction, error) {
	if page < 1 {
		page = 1
	}

	var interactions []Interaction
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * HistoryPageSize).
		Limit(HistoryPageSize).
		Find(&interactions).
		Error
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

// DeleteInteraction removes an interaction if present. Deleting an id that
// does not exist is not an error.
func DeleteInteraction(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	return db.WithContext(ctx).Delete(&Interaction{}, "id = ?", id).Error
}
