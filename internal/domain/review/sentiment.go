package review

import (
	"math"
	"strings"
)

// Keyword lists are kept free of entries that contain one another so a single
// word is never counted on both sides.
var (
	positiveKeywords = []string{
		"excellent", "amazing", "great", "wonderful", "friendly", "fantastic",
		"beautiful", "perfect", "helpful", "lovely", "gentle", "calm",
		"knowledgeable", "recommend", "enjoyed", "awesome", "welcoming",
		"well cared", "spotless",
	}
	negativeKeywords = []string{
		"terrible", "awful", "rude", "dirty", "dangerous", "disappointing",
		"poor", "horrible", "aggressive", "unsafe", "worst", "overpriced",
		"neglected", "injured", "uncomfortable", "unprofessional", "chaotic",
	}
)

const (
	maxCommentShift = 0.5
	minRating       = 0.0
	maxRating       = 5.0
)

// Signal is one review as seen by the adjuster.
type Signal struct {
	Rating  int
	Comment string
}

type Summary struct {
	Average  float64
	Adjusted float64
	Count    int
}

// CommentScore returns the comment's adjustment in [-0.5, 0.5].
func CommentScore(comment string) float64 {
	text := strings.ToLower(comment)
	if strings.TrimSpace(text) == "" {
		return 0
	}

	pos := countAll(text, positiveKeywords)
	neg := countAll(text, negativeKeywords)
	if pos+neg == 0 {
		return 0
	}
	return maxCommentShift * float64(pos-neg) / float64(pos+neg)
}

// Adjust nudges a raw star average by the mean comment score.
// Every comment counts towards the mean, including empty ones.
func Adjust(rawAverage float64, comments []string) float64 {
	if len(comments) == 0 {
		return round2(clamp(rawAverage, minRating, maxRating))
	}
	var sum float64
	for _, c := range comments {
		sum += CommentScore(c)
	}
	return round2(clamp(rawAverage+sum/float64(len(comments)), minRating, maxRating))
}

// Summarize derives the displayed rating of a review set. No reviews yields 0.
func Summarize(signals []Signal) Summary {
	if len(signals) == 0 {
		return Summary{}
	}

	var total int
	comments := make([]string, 0, len(signals))
	for _, s := range signals {
		total += s.Rating
		comments = append(comments, s.Comment)
	}
	avg := float64(total) / float64(len(signals))

	return Summary{
		Average:  round2(avg),
		Adjusted: Adjust(avg, comments),
		Count:    len(signals),
	}
}

func countAll(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		n += strings.Count(text, k)
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
