package pgconv

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// IsNoRows reports a missing row from either pgx or database/sql.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// Identifiers

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return UUIDToPgtype(*id)
}

func UUIDPtrFromPgtype(v pgtype.UUID) *uuid.UUID {
	return ptrIf(uuid.UUID(v.Bytes), v.Valid)
}

// Text

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return StringToPgtype(*s)
}

func StringPtrFromPgtype(v pgtype.Text) *string {
	return ptrIf(v.String, v.Valid)
}

// Time

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimeFromPgtype(v pgtype.Timestamptz) time.Time {
	return v.Time
}

// DateToPgtype keeps the calendar date of t as seen in t's own location.
func DateToPgtype(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(v pgtype.Date) time.Time {
	return v.Time
}

// IntToInt32 saturates at the int32 bounds instead of wrapping.
func IntToInt32(v int) int32 {
	return int32(max(math.MinInt32, min(v, math.MaxInt32)))
}

func ptrIf[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
