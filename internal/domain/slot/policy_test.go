//go:build unit

package slot_test

import (
	"testing"

	"stable-booking/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	base := slot.DefaultPolicy()

	t.Run("empty override keeps the base", func(t *testing.T) {
		for _, raw := range [][]byte{nil, []byte("null")} {
			p, err := slot.ParsePolicy(raw, base)
			require.NoError(t, err)
			assert.Equal(t, base, p)
		}
	})

	t.Run("partial override replaces only given keys", func(t *testing.T) {
		p, err := slot.ParsePolicy([]byte(`{"afternoonHours":[13,15],"maxMorningBookingsPerHorse":3}`), base)
		require.NoError(t, err)

		assert.Equal(t, base.MorningHours, p.MorningHours)
		assert.Equal(t, []int{13, 15}, p.AfternoonHours)
		assert.Equal(t, 3, p.MaxMorningBookingsPerHorse)
		assert.Equal(t, base.MaxAfternoonBookingsPerHorse, p.MaxAfternoonBookingsPerHorse)
	})

	t.Run("invalid overrides are rejected", func(t *testing.T) {
		cases := map[string]string{
			"malformed json":          `{"morningHours":`,
			"afternoon hour declared": `{"morningHours":[13]}`,
			"hour out of range":       `{"afternoonHours":[24]}`,
			"duplicate hour":          `{"morningHours":[6,6]}`,
			"negative cap":            `{"maxAfternoonBookingsPerHorse":-1}`,
		}
		for name, raw := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := slot.ParsePolicy([]byte(raw), base)
				assert.ErrorIs(t, err, slot.ErrInvalidPolicy)
			})
		}
	})
}

func TestPolicy_Hours(t *testing.T) {
	p := slot.DefaultPolicy()

	assert.Equal(t, []int{6, 7, 8, 9, 10, 11, 14, 15, 16}, p.Hours())
	assert.True(t, p.Offers(14))
	assert.False(t, p.Offers(12))
	assert.Equal(t, 2, p.CapFor(slot.SessionMorning))
	assert.Equal(t, 1, p.CapFor(slot.SessionAfternoon))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{in: "2025-03-10", valid: true},
		{in: "2024-02-29", valid: true},
		{in: "2025-02-29"},
		{in: "2025-3-10"},
		{in: "10/03/2025"},
		{in: "2025-03-10T00:00:00Z"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := slot.ParseDate(tt.in)
			if !tt.valid {
				assert.ErrorIs(t, err, slot.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, d.String())
		})
	}

	t.Run("adding days crosses month ends", func(t *testing.T) {
		assert.Equal(t, "2025-03-01", mustDate(t, "2025-02-28").AddDays(1).String())
	})
}
