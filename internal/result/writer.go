package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizzer/internal/logging"
)

// WriteError indicates a result record could not be persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write result %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Writer stores result records as JSON files in a directory.
type Writer struct {
	dir string
	log logrus.FieldLogger
}

// NewWriter creates a Writer for dir. The directory is created on first write.
func NewWriter(dir string, log logrus.FieldLogger) *Writer {
	return &Writer{dir: dir, log: logging.OrDiscard(log)}
}

// FileName returns the file name for a quiz's result at timestamp.
func FileName(quizName, timestamp string) string {
	return fmt.Sprintf("result_%s_%s.json", quizName, timestamp)
}

// Write serializes r to a new file and returns its path. An existing file is
// never overwritten; on a name collision a short random suffix is added.
func (w *Writer) Write(r *Result) (string, error) {
	data, err := Encode(r)
	if err != nil {
		return "", &WriteError{Path: w.dir, Err: err}
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", &WriteError{Path: w.dir, Err: err}
	}

	path := filepath.Join(w.dir, FileName(r.QuizName, r.Timestamp))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		w.log.WithField("path", path).Warn("Result file exists, adding suffix")
		suffix := uuid.NewString()[:8]
		path = filepath.Join(w.dir, FileName(r.QuizName, r.Timestamp+"_"+suffix))
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", &WriteError{Path: path, Err: err}
	}

	w.log.WithFields(logrus.Fields{
		"path":  path,
		"quiz":  r.QuizName,
		"score": r.Score,
	}).Debug("Result written")
	return path, nil
}

// Encode renders r as indented UTF-8 JSON without escaping non-ASCII or HTML
// characters.
func Encode(r *Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return buf.Bytes(), nil
}
