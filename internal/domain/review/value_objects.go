package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MinStars = 1
	MaxStars = 5

	// MaxCommentLength counts characters, not bytes.
	MaxCommentLength = 1000
)

// Rating is a whole number of stars.
type Rating int

func NewRating(stars int) (Rating, error) {
	if stars < MinStars || stars > MaxStars {
		return 0, ErrInvalidRating
	}
	return Rating(stars), nil
}

func (r Rating) Value() int { return int(r) }

// Comment is optional; a blank comment is stored as empty text.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	text := strings.TrimSpace(s)
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: text}, nil
}

func (c Comment) String() string { return c.text }

func (c Comment) IsEmpty() bool { return c.text == "" }
