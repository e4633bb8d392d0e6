//go:build unit

package queries_test

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"stable-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 3, 1, 12, 30, 15, 123456789, time.UTC)

	t.Run("encode then parse keeps microseconds", func(t *testing.T) {
		got, err := queries.ParsePosition(queries.Position{CreatedAt: at, ID: id}.Encode())

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.True(t, at.Truncate(time.Microsecond).Equal(got.CreatedAt))
	})

	t.Run("bare nanosecond token", func(t *testing.T) {
		got, err := queries.ParsePosition(fmt.Sprintf("%d-%s", at.UnixNano(), id))

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.True(t, at.Equal(got.CreatedAt))
	})

	t.Run("cursor wraps the encoded token", func(t *testing.T) {
		pos := queries.Position{CreatedAt: at, ID: id}
		assert.Equal(t, pos.Encode(), pos.Cursor().After)
	})

	invalid := map[string]string{
		"empty":         "",
		"no separator":  "12345",
		"bad timestamp": "abc-" + id.String(),
		"bad uuid":      "12345-not-a-uuid",
		"bad v1 uuid":   base64.URLEncoding.EncodeToString([]byte("v1:12345-nope")),
	}
	for name, token := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := queries.ParsePosition(token)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
