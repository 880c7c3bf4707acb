package quiz

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/quizzer/internal/catalog"
)

// Load reads and validates the quiz document at path. The quiz is named
// after the file with its suffix stripped.
func Load(path string) (*Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return Parse(catalog.Name(path), data)
}

// Parse validates a quiz document and decodes it into a Quiz.
func Parse(name string, data []byte) (*Quiz, error) {
	malformed := func(index int, err error) error {
		return &MalformedError{Name: name, Index: index, Err: err}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(-1, fmt.Errorf("invalid JSON: %w", err))
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, malformed(-1, fmt.Errorf("schema validation failed: %w", err))
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, malformed(-1, fmt.Errorf("decode questions: %w", err))
	}
	if len(questions) == 0 {
		return nil, malformed(-1, ErrNoQuestions)
	}

	for i, q := range questions {
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return nil, malformed(i, fmt.Errorf("answer %d out of range for %d options", q.Answer, len(q.Options)))
		}
	}

	return &Quiz{Name: name, Questions: questions}, nil
}
