//go:build unit

package pgconv_test

import (
	"database/sql"
	"fmt"
	"math"
	"testing"
	"time"

	"stable-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("find horse: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(sql.ErrConnDone))
	assert.False(t, pgconv.IsNoRows(nil))
}

func TestNullableValues(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(nil)))

	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	tier := "Advanced"
	gotTier := pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&tier))
	require.NotNil(t, gotTier)
	assert.Equal(t, tier, *gotTier)
}

func TestDateToPgtype(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 00:30 in Tokyo is still the previous day in UTC.
	d := pgconv.DateToPgtype(time.Date(2025, 6, 2, 0, 30, 0, 0, tokyo))

	assert.Equal(t, pgtype.Date{Time: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Valid: true}, d)
}

func TestIntToInt32(t *testing.T) {
	assert.Equal(t, int32(42), pgconv.IntToInt32(42))
	assert.Equal(t, int32(math.MaxInt32), pgconv.IntToInt32(math.MaxInt32+10))
	assert.Equal(t, int32(math.MinInt32), pgconv.IntToInt32(math.MinInt32-10))
}
