// Package quiz loads multiple-choice quiz documents into validated,
// in-memory quizzes.
package quiz

// Question is a single multiple-choice question. Answer is a 0-based index
// into Options and is always in range once loaded.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	return q.Options[q.Answer]
}

// Option returns the option at index i, or false if i is out of range.
func (q Question) Option(i int) (string, bool) {
	if i < 0 || i >= len(q.Options) {
		return "", false
	}
	return q.Options[i], true
}

// Quiz is an ordered, non-empty list of questions. Question order is the
// presentation order.
type Quiz struct {
	Name      string
	Questions []Question
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	return len(q.Questions)
}
