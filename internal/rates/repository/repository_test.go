package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ratesdomain.RateEntry{}))
	return db
}

func TestBulkInsertAndList(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	entries := []ratesdomain.RateEntry{
		{RateID: "r-81", CountryCode: 81, DialPlan: "81", StandardRate: 0.35, ReducedRate: 0.25, Description: "Japan", AccessCode: ratesdomain.AccessCodeStandard},
		{RateID: "r-44", CountryCode: 44, DialPlan: "44", StandardRate: 0.18, ReducedRate: 0.12, Description: "United Kingdom", AccessCode: ratesdomain.AccessCodeStandard},
		{RateID: "r-44e", CountryCode: 44, DialPlan: "44", StandardRate: 0.14, ReducedRate: 0.10, Description: "United Kingdom (economic)", AccessCode: ratesdomain.AccessCodeEconomic},
	}
	require.NoError(t, repo.BulkInsert(ctx, db, entries))

	count, err := repo.Count(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	listed, err := repo.List(ctx, db)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	// Ordered by dial plan, then access code.
	assert.Equal(t, "r-44", listed[0].RateID)
	assert.Equal(t, "r-44e", listed[1].RateID)
	assert.Equal(t, "r-81", listed[2].RateID)
}

func TestBulkInsertDuplicateRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	entries := []ratesdomain.RateEntry{
		{RateID: "r-81", CountryCode: 81, DialPlan: "81", StandardRate: 0.35, ReducedRate: 0.25, AccessCode: ratesdomain.AccessCodeStandard},
		{RateID: "r-81", CountryCode: 81, DialPlan: "81", StandardRate: 0.35, ReducedRate: 0.25, AccessCode: ratesdomain.AccessCodeStandard},
	}
	require.Error(t, repo.BulkInsert(ctx, db, entries))

	count, err := repo.Count(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestParseJSON(t *testing.T) {
	input := `[
		{"rateId": "r-65", "countryCode": 65, "standardRate": 0.2, "reducedRate": 0.15, "description": "Singapore", "dialPlan": "65", "chargingBlockId": "block-60", "accessCode": "0"}
	]`
	entries, err := ParseJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 65, entries[0].CountryCode)
	assert.Equal(t, "65", entries[0].DialPlan)
	assert.Equal(t, 0.2, entries[0].StandardRate)

	_, err = ParseJSON(strings.NewReader("{not json"))
	assert.Error(t, err)
}
