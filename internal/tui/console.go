// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned by Ask when the input reaches EOF before a line
// could be read.
var ErrInputClosed = errors.New("input closed")

// Console is a line-oriented prompt: every question is printed on its own
// line and every answer is one line of input. It works the same on a
// terminal, a pipe, or a file, which keeps scripted sessions reproducible.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

// NewConsole returns a console reading answers from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: NewStyles(out),
	}
}

// Ask prints question and returns the next input line without its line ending.
// A final line without a trailing newline is still returned; an empty read at
// EOF yields ErrInputClosed.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("prompt canceled: %w", err)
	}

	fmt.Fprintln(c.out, c.styles.Prompt.Render(question))

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Banner prints a title line.
func (c *Console) Banner(msg string) {
	fmt.Fprintln(c.out, c.styles.Title.Render(msg))
}

// Say prints an unstyled line.
func (c *Console) Say(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Warn prints an invalid-input or rejection line.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.styles.Warning.Render(msg))
}

// Success prints the outcome line.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.styles.Success.Render(msg))
}

// Styles returns the styles bound to the console output.
func (c *Console) Styles() Styles {
	return c.styles
}
