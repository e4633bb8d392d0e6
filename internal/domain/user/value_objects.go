package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidRole    = errors.New("invalid role")
	ErrNegativePoints = errors.New("rank points cannot be negative")
	ErrNotRider       = errors.New("user is not a rider")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type RankPoints struct {
	value int
}

func NewRankPoints(v int) (RankPoints, error) {
	if v < 0 {
		return RankPoints{}, ErrNegativePoints
	}
	return RankPoints{value: v}, nil
}

func (p RankPoints) Value() int {
	return p.value
}
