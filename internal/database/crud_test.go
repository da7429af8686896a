package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func createDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, GetMigrator(db).Migrate())

	return db
}

func seedInteractions(t *testing.T, db *gorm.DB, n int) []Interaction {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	interactions := make([]Interaction, n)
	for i := 0; i < n; i++ {
		interactions[i] = Interaction{
			Id:         uuid.New(),
			Kind:       KindSummary,
			InputText:  fmt.Sprintf("case %d", i),
			AIResponse: fmt.Sprintf("summary %d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, CreateInteraction(context.Background(), db, &interactions[i]))
	}
	return interactions
}

func TestListInteractionsPagination(t *testing.T) {
	db := createDB(t)
	seeded := seedInteractions(t, db, 25)

	page1, err := ListInteractions(context.Background(), db, 1)
	require.NoError(t, err)
	assert.Len(t, page1, HistoryPageSize)

	page2, err := ListInteractions(context.Background(), db, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 5)

	// Newest first: the last seeded record leads page 1.
	assert.Equal(t, seeded[24].Id, page1[0].Id)
	assert.Equal(t, seeded[4].Id, page2[0].Id)
	assert.Equal(t, seeded[0].Id, page2[4].Id)

	seen := make(map[uuid.UUID]bool)
	for _, interaction := range append(page1, page2...) {
		assert.False(t, seen[interaction.Id], "interaction %s returned on both pages", interaction.Id)
		seen[interaction.Id] = true
	}
	assert.Len(t, seen, 25)

	for i := 1; i < len(page1); i++ {
		assert.False(t, page1[i].CreatedAt.After(page1[i-1].CreatedAt))
	}

	page3, err := ListInteractions(context.Background(), db, 3)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestListInteractionsClampsPage(t *testing.T) {
	db := createDB(t)
	seedInteractions(t, db, 3)

	page, err := ListInteractions(context.Background(), db, 0)
	require.NoError(t, err)
	assert.Len(t, page, 3)
}

func TestDeleteInteractionIdempotent(t *testing.T) {
	db := createDB(t)
	seeded := seedInteractions(t, db, 2)

	require.NoError(t, DeleteInteraction(context.Background(), db, seeded[0].Id))

	var count int64
	require.NoError(t, db.Model(&Interaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Deleting the same id again, or an id that never existed, succeeds.
	require.NoError(t, DeleteInteraction(context.Background(), db, seeded[0].Id))
	require.NoError(t, DeleteInteraction(context.Background(), db, uuid.New()))

	require.NoError(t, db.Model(&Interaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
