package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// IO is the text surface a session talks to.
type IO interface {
	// Println displays one line.
	Println(line string)

	// ReadLine displays prompt and blocks until a line is read. It returns
	// io.EOF once the input is exhausted.
	ReadLine(prompt string) (string, error)
}

// Console is an IO over a reader and a writer, usually stdin and stdout.
// Lines may be of any length.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

var _ IO = (*Console)(nil)

// NewConsole creates a Console reading lines from r and writing to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: w}
}

func (c *Console) Println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		// A final line without a newline is still a line.
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
