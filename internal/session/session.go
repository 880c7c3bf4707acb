// Package session runs a loaded quiz against a text surface, scores the
// answers and assembles the result record.
package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizzer/internal/grade"
	"github.com/abhisek/quizzer/internal/logging"
	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/result"
)

// AnswerPrompt is shown when reading each answer.
const AnswerPrompt = "Your answer: "

// Styles decorates the lines a session prints. Nil fields leave text as is.
type Styles struct {
	Question func(string) string
	Correct  func(string) string
	Wrong    func(string) string
	Skipped  func(string) string
	Summary  func(string) string
}

func apply(style func(string) string, s string) string {
	if style == nil {
		return s
	}
	return style(s)
}

type options struct {
	now    func() time.Time
	log    logrus.FieldLogger
	styles Styles
}

// Option configures Run.
type Option func(*options)

// WithClock sets the clock used for the result timestamp.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// WithStyles sets the line decorations.
func WithStyles(s Styles) Option {
	return func(o *options) { o.styles = s }
}

// Run presents every question of q in order, reads one answer per question
// and returns the scored result. Unparsable answers are recorded as skipped.
// If the input ends early the remaining questions are skipped too. Any other
// read error aborts the run.
func Run(q *quiz.Quiz, console IO, opts ...Option) (*result.Result, error) {
	if q == nil || q.Len() == 0 {
		return nil, quiz.ErrNoQuestions
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	log := logging.OrDiscard(o.log).WithField("quiz", q.Name)
	st := o.styles

	score := 0
	answers := make([]result.AnswerRecord, 0, q.Len())
	inputClosed := false

	for i, question := range q.Questions {
		rec := result.AnswerRecord{
			Question: question.Text,
			Correct:  question.CorrectOption(),
		}

		if inputClosed {
			answers = append(answers, rec)
			continue
		}

		console.Println("")
		console.Println(apply(st.Question, fmt.Sprintf("Q%d. %s", i+1, question.Text)))
		for j, opt := range question.Options {
			console.Println(fmt.Sprintf("  %d. %s", j+1, opt))
		}

		line, err := console.ReadLine(AnswerPrompt)
		if errors.Is(err, io.EOF) {
			console.Println("")
			console.Println(apply(st.Skipped, "Input closed, skipping remaining questions..."))
			log.WithField("question", i+1).Warn("Input closed before quiz finished")
			inputClosed = true
			answers = append(answers, rec)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read answer %d: %w", i+1, err)
		}

		choice := ParseChoice(line)
		if !choice.Valid {
			console.Println(apply(st.Skipped, "Invalid input, skipping..."))
			log.WithField("question", i+1).Debug("Answer skipped")
			answers = append(answers, rec)
			continue
		}

		correct := choice.Index == question.Answer
		if correct {
			score++
			console.Println(apply(st.Correct, "Correct!"))
		} else {
			console.Println(apply(st.Wrong, "Wrong! Correct answer: "+rec.Correct))
		}

		// Out-of-range selections are scored wrong but record no chosen text.
		if chosen, ok := question.Option(choice.Index); ok {
			rec.Chosen = &chosen
		}
		rec.IsCorrect = &correct
		answers = append(answers, rec)

		log.WithFields(logrus.Fields{
			"question": i + 1,
			"choice":   choice.Index + 1,
			"correct":  correct,
		}).Debug("Answer recorded")
	}

	total := q.Len()
	percentage := Percentage(score, total)
	g := grade.Calculate(float64(percentage))

	console.Println("")
	console.Println(apply(st.Summary, fmt.Sprintf("Your score: %d/%d (%s%%)", score, total, percentage)))
	console.Println(apply(st.Summary, fmt.Sprintf("Your grade: %d", g)))

	r := &result.Result{
		QuizName:   q.Name,
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Grade:      g,
		Timestamp:  o.now().Format(result.TimestampLayout),
		Answers:    answers,
	}

	log.WithFields(logrus.Fields{
		"score":      r.Score,
		"total":      r.Total,
		"percentage": float64(r.Percentage),
		"grade":      r.Grade,
	}).Info("Quiz completed")

	return r, nil
}

// Percentage returns 100*score/total rounded to two decimals, ties to even.
// total must be positive.
func Percentage(score, total int) result.Percentage {
	p := float64(score) / float64(total) * 100
	return result.Percentage(math.RoundToEven(p*100) / 100)
}
