package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Console - line oriented terminal transport. Reads never block past context cancellation.
type Console struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan line

	err error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    in,
		out:   out,
		lines: make(chan line),
	}
}

// ReadLine - returns the next trimmed input line, io.EOF at end of input or ctx.Err() on cancellation.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.readLoop()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		return l.text, l.err
	}
}

func (that *Console) readLoop() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- line{text: strings.TrimSpace(scanner.Text())}
	}

	if err := scanner.Err(); err != nil {
		that.lines <- line{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (that *Console) Printf(format string, args ...any) {
	if that.err != nil {
		return
	}

	_, that.err = fmt.Fprintf(that.out, format, args...)
}

func (that *Console) Println(args ...any) {
	if that.err != nil {
		return
	}

	_, that.err = fmt.Fprintln(that.out, args...)
}

func (that *Console) Print(s string) {
	that.Printf("%s", s)
}

// Err - first write error, if any.
func (that *Console) Err() error {
	return that.err
}
