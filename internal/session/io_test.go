package session

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_ReadLine(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("2\nabc\n"), &out)

	line, err := c.ReadLine("Your answer: ")
	require.NoError(t, err)
	assert.Equal(t, "2", line)

	line, err = c.ReadLine("Your answer: ")
	require.NoError(t, err)
	assert.Equal(t, "abc", line)

	_, err = c.ReadLine("Your answer: ")
	assert.True(t, errors.Is(err, io.EOF))

	assert.Equal(t, "Your answer: Your answer: Your answer: ", out.String())
}

func TestConsole_Println(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	c.Println("Q1. 2+2?")
	c.Println("")
	assert.Equal(t, "Q1. 2+2?\n\n", out.String())
}

func TestRun_OverConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("2\n"), &out)

	r, err := Run(arithmeticQuiz(), c, WithClock(fixedClock))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Score)
	assert.Contains(t, out.String(), "Your answer: Correct!")
}

func TestConsole_ReadLine_UnterminatedAndCRLF(t *testing.T) {
	c := NewConsole(strings.NewReader("1\r\n3"), io.Discard)

	line, err := c.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "1", line)

	line, err = c.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "3", line)

	_, err = c.ReadLine("")
	assert.True(t, errors.Is(err, io.EOF))
}

func TestRun_OverConsole_VeryLongLineIsSkipped(t *testing.T) {
	var out bytes.Buffer
	input := strings.Repeat("x", 70000) + "\n2\n"
	c := NewConsole(strings.NewReader(input), &out)

	r, err := Run(twoQuestionQuiz(), c, WithClock(fixedClock))
	require.NoError(t, err)
	require.Len(t, r.Answers, 2)
	assert.True(t, r.Answers[0].Skipped())
	assert.False(t, r.Answers[1].Skipped())
	assert.Equal(t, 1, r.Score)
	assert.Contains(t, out.String(), "Invalid input, skipping...")
	assert.Contains(t, out.String(), "Q2. Second?")
}
