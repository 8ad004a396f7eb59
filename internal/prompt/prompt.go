// Package prompt reads single-line answers from the operator.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader asks questions on w and reads answers line by line from r.
type LineReader struct {
	reader *bufio.Reader
	w      io.Writer
}

// New returns a LineReader over r and w.
func New(r io.Reader, w io.Writer) *LineReader {
	return &LineReader{reader: bufio.NewReader(r), w: w}
}

// Ask prints question and returns the trimmed answer. An empty answer, or
// end of input, yields def.
func (l *LineReader) Ask(question, def string) (string, error) {
	fmt.Fprint(l.w, question)

	line, err := l.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		// Keep the terminal tidy when stdin is closed.
		fmt.Fprintln(l.w)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
