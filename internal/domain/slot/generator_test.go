//go:build unit

package slot_test

import (
	"testing"
	"time"

	"stable-booking/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*60*60)

func mustDate(t *testing.T, s string) slot.Date {
	t.Helper()
	d, err := slot.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestGenerator_Generate(t *testing.T) {
	stableID := uuid.New()
	horses := []uuid.UUID{uuid.New(), uuid.New()}
	base := mustDate(t, "2025-03-10")
	gen := slot.NewGenerator(slot.DefaultPolicy(), jst, 7)

	t.Run("covers every day, horse and offered hour", func(t *testing.T) {
		got := gen.Generate(stableID, base, horses, nil)

		hours := slot.DefaultPolicy().Hours()
		require.Len(t, got, 7*len(horses)*len(hours))

		first := got[0]
		assert.Equal(t, stableID, first.StableID)
		assert.Equal(t, horses[0], first.HorseID)
		assert.Equal(t, "2025-03-10", first.Date.String())
		assert.True(t, first.Start.Equal(time.Date(2025, 3, 10, 6, 0, 0, 0, jst)))
		assert.Equal(t, time.Hour, first.End.Sub(first.Start))

		last := got[len(got)-1]
		assert.Equal(t, "2025-03-16", last.Date.String())
		assert.True(t, last.Start.Equal(time.Date(2025, 3, 16, 16, 0, 0, 0, jst)))
	})

	t.Run("running twice over its own output adds nothing", func(t *testing.T) {
		first := gen.Generate(stableID, base, horses, nil)
		existing := make([]slot.ExistingSlot, len(first))
		for i, c := range first {
			existing[i] = slot.ExistingSlot{HorseID: c.HorseID, Start: c.Start}
		}

		assert.Empty(t, gen.Generate(stableID, base, horses, existing))
	})

	t.Run("existing start within tolerance suppresses the candidate", func(t *testing.T) {
		start := time.Date(2025, 3, 10, 6, 0, 0, 0, jst)
		existing := []slot.ExistingSlot{
			{HorseID: horses[0], Start: start.Add(45 * time.Second)},
			{HorseID: horses[0], Start: start.Add(time.Hour + 2*time.Minute)},
		}

		got := slot.NewGenerator(slot.DefaultPolicy(), jst, 1).Generate(stableID, base, horses[:1], existing)

		hours := slot.DefaultPolicy().Hours()
		require.Len(t, got, len(hours)-1)
		for _, c := range got {
			assert.False(t, c.Start.Equal(start), "06:00 should be treated as existing")
		}
	})

	t.Run("existing slot of another horse does not suppress", func(t *testing.T) {
		start := time.Date(2025, 3, 10, 6, 0, 0, 0, jst)
		existing := []slot.ExistingSlot{{HorseID: horses[1], Start: start}}

		got := slot.NewGenerator(slot.DefaultPolicy(), jst, 1).Generate(stableID, base, horses[:1], existing)
		assert.Len(t, got, len(slot.DefaultPolicy().Hours()))
	})

	t.Run("non-positive window falls back to the default", func(t *testing.T) {
		got := slot.NewGenerator(slot.DefaultPolicy(), jst, 0).Generate(stableID, base, horses[:1], nil)
		assert.Len(t, got, slot.DefaultWindowDays*len(slot.DefaultPolicy().Hours()))
	})

	t.Run("no horses yields no candidates", func(t *testing.T) {
		assert.Empty(t, gen.Generate(stableID, base, nil, nil))
	})
}

func TestGenerator_Window(t *testing.T) {
	gen := slot.NewGenerator(slot.DefaultPolicy(), jst, 7)

	from, to := gen.Window(mustDate(t, "2025-03-10"))

	assert.True(t, from.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, jst)))
	assert.True(t, to.Equal(time.Date(2025, 3, 17, 0, 0, 0, 0, jst)))
}
