package queries

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	positionPrefix = "v1:"
)

// Cursor is the opaque paging token handed to clients.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// Position is the (created_at, id) keyset a page ends at.
type Position struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Encode renders p as base64url("v1:<unix micros>-<uuid>"). Microseconds match
// what Postgres stores, so the keyset comparison is exact.
func (p Position) Encode() string {
	raw := positionPrefix + strconv.FormatInt(p.CreatedAt.UnixMicro(), 10) + "-" + p.ID.String()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func (p Position) Cursor() *Cursor {
	return &Cursor{After: p.Encode()}
}

// ParsePosition reads an encoded position. Bare "<unix nanos>-<uuid>" tokens
// from older clients are still accepted.
func ParsePosition(token string) (Position, error) {
	if token == "" {
		return Position{}, errors.New("empty cursor")
	}
	if raw, err := base64.URLEncoding.DecodeString(token); err == nil {
		if body, ok := strings.CutPrefix(string(raw), positionPrefix); ok {
			return splitPosition(body, time.UnixMicro)
		}
	}
	return splitPosition(token, func(n int64) time.Time { return time.Unix(0, n) })
}

func splitPosition(s string, toTime func(int64) time.Time) (Position, error) {
	stamp, id, ok := strings.Cut(s, "-")
	if !ok {
		return Position{}, fmt.Errorf("cursor %q: missing separator", s)
	}
	n, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		return Position{}, fmt.Errorf("cursor timestamp: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Position{}, fmt.Errorf("cursor id: %w", err)
	}
	return Position{CreatedAt: toTime(n), ID: parsed}, nil
}

// ValidateLimit clamps a requested page size into [1, MaxListLimit].
func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
