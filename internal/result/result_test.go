package result

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func sampleResult() *Result {
	return &Result{
		QuizName:   "Kapitel 1",
		Score:      1,
		Total:      3,
		Percentage: 33.33,
		Grade:      -3,
		Timestamp:  "2026-10-17_09-30-00",
		Answers: []AnswerRecord{
			{Question: "Hovedstad?", Chosen: strPtr("København"), Correct: "København", IsCorrect: boolPtr(true)},
			{Question: "2+2?", Chosen: nil, Correct: "4", IsCorrect: boolPtr(false)},
			{Question: "<b>?</b>", Chosen: nil, Correct: "x & y"},
		},
	}
}

func TestWrite_CreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results", "nested")
	w := NewWriter(dir, nil)

	path, err := w.Write(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "result_Kapitel 1_2026-10-17_09-30-00.json"), path)
	assert.FileExists(t, path)
}

func TestWrite_DocumentShape(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)
	path, err := w.Write(sampleResult())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	// Non-ASCII and HTML characters are written verbatim.
	assert.Contains(t, text, "København")
	assert.Contains(t, text, "<b>?</b>")
	assert.Contains(t, text, "x & y")
	assert.Contains(t, text, "\n  \"quiz_name\": \"Kapitel 1\"")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"quiz_name", "score", "total", "percentage", "grade", "timestamp", "answers"} {
		assert.Contains(t, doc, key)
	}

	answers := doc["answers"].([]any)
	require.Len(t, answers, 3)

	scored := answers[0].(map[string]any)
	assert.Equal(t, "København", scored["chosen"])
	assert.Equal(t, true, scored["is_correct"])

	outOfRange := answers[1].(map[string]any)
	assert.Contains(t, outOfRange, "chosen")
	assert.Nil(t, outOfRange["chosen"])
	assert.Equal(t, false, outOfRange["is_correct"])

	skipped := answers[2].(map[string]any)
	assert.Contains(t, skipped, "chosen")
	assert.Nil(t, skipped["chosen"])
	assert.NotContains(t, skipped, "is_correct")
}

func TestWrite_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)
	r := sampleResult()

	first, err := w.Write(r)
	require.NoError(t, err)
	second, err := w.Write(r)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Regexp(t, `result_Kapitel 1_2026-10-17_09-30-00_[0-9a-f]{8}\.json$`, second)

	paths, err := List(dir)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestWrite_UnwritableDestination(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewWriter(filepath.Join(blocker, "results"), nil).Write(sampleResult())
	require.Error(t, err)

	var we *WriteError
	assert.True(t, errors.As(err, &we), "expected WriteError, got %T", err)
}

func TestRoundTrip(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)
	want := sampleResult()

	path, err := w.Write(want)
	require.NoError(t, err)

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPercentage_MarshalJSON(t *testing.T) {
	tests := []struct {
		in   Percentage
		want string
	}{
		{100, "100.0"},
		{0, "0.0"},
		{66.67, "66.67"},
		{12.5, "12.5"},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(got))
	}
}

func TestList_OrdersAndFilters(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{
		"result_Cap 10_2026-01-01_00-00-00.json",
		"result_Cap 2_2026-01-01_00-00-00.json",
		"notes.json",
		"result_draft.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("{}"), 0o644))
	}

	paths, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "result_Cap 2_2026-01-01_00-00-00.json"),
		filepath.Join(dir, "result_Cap 10_2026-01-01_00-00-00.json"),
	}, paths)
}

func TestList_MissingDirectory(t *testing.T) {
	paths, err := List(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestResult_TimeAndSkipped(t *testing.T) {
	r := sampleResult()
	ts, err := r.Time()
	require.NoError(t, err)
	assert.Equal(t, 2026, ts.Year())
	assert.Equal(t, 9, ts.Hour())

	assert.False(t, r.Answers[1].Skipped())
	assert.True(t, r.Answers[2].Skipped())
}
