// Package result defines the persisted record of a completed quiz session
// and reads and writes it as JSON.
package result

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the layout of Result.Timestamp.
const TimestampLayout = "2006-01-02_15-04-05"

// Percentage is a score percentage rounded to two decimals. It always
// encodes with a fractional part, e.g. 100.0 rather than 100.
type Percentage float64

func (p Percentage) String() string {
	s := strconv.FormatFloat(float64(p), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (p Percentage) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// AnswerRecord is the outcome of one question. Chosen is nil when the input
// was skipped or the selection was out of range. IsCorrect is nil only for
// skipped input.
type AnswerRecord struct {
	Question  string  `json:"question"`
	Chosen    *string `json:"chosen"`
	Correct   string  `json:"correct"`
	IsCorrect *bool   `json:"is_correct,omitempty"`
}

// Skipped reports whether the question was skipped.
func (a AnswerRecord) Skipped() bool {
	return a.IsCorrect == nil
}

// Result is the summary of one completed quiz session.
type Result struct {
	QuizName   string         `json:"quiz_name"`
	Score      int            `json:"score"`
	Total      int            `json:"total"`
	Percentage Percentage     `json:"percentage"`
	Grade      int            `json:"grade"`
	Timestamp  string         `json:"timestamp"`
	Answers    []AnswerRecord `json:"answers"`
}

// Time parses Timestamp in the local time zone.
func (r *Result) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, r.Timestamp, time.Local)
}
