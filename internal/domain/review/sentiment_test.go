//go:build unit

package review_test

import (
	"testing"

	"stable-booking/internal/domain/review"

	"github.com/stretchr/testify/assert"
)

func TestCommentScore(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    float64
	}{
		{name: "positive only", comment: "Great horses and friendly staff", want: 0.5},
		{name: "negative only", comment: "Rude staff, dirty stables", want: -0.5},
		{name: "balanced", comment: "Great ride but the saddle was uncomfortable", want: 0},
		{name: "no keywords", comment: "It was fine", want: 0},
		{name: "case insensitive", comment: "GREAT great Great", want: 0.5},
		{name: "empty", comment: "", want: 0},
		{name: "whitespace", comment: "   ", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, review.CommentScore(tt.comment), 1e-9)
		})
	}
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name     string
		average  float64
		comments []string
		want     float64
	}{
		{name: "no comments keeps average", average: 4.333, comments: nil, want: 4.33},
		{name: "clamped at five", average: 5, comments: []string{"Amazing, perfect, lovely"}, want: 5},
		{name: "negative shift", average: 1, comments: []string{"Rude staff, dirty stables"}, want: 0.5},
		{name: "empty comments dilute the shift", average: 4, comments: []string{"Great horses", "", ""}, want: 4.17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, review.Adjust(tt.average, tt.comments), 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, review.Summary{}, review.Summarize(nil))
	})

	t.Run("mixed reviews", func(t *testing.T) {
		got := review.Summarize([]review.Signal{
			{Rating: 5, Comment: "Great horses and friendly staff"},
			{Rating: 4, Comment: "It was fine"},
		})

		assert.Equal(t, 2, got.Count)
		assert.InDelta(t, 4.5, got.Average, 1e-9)
		assert.InDelta(t, 4.75, got.Adjusted, 1e-9)
	})

	t.Run("average is rounded", func(t *testing.T) {
		got := review.Summarize([]review.Signal{{Rating: 5}, {Rating: 4}, {Rating: 4}})

		assert.InDelta(t, 4.33, got.Average, 1e-9)
		assert.InDelta(t, 4.33, got.Adjusted, 1e-9)
	})
}
