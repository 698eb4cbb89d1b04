package fixedpoint

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseStart parses an integer or decimal starting value. Surrounding
// whitespace is ignored; NaN, infinities and values that overflow
// float64 are rejected.
func ParseStart(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &InputError{Text: text, Err: ErrEmptyInput}
	}

	// Overflow comes back as ErrRange with v = ±Inf, caught below.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &InputError{Text: s, Err: ErrNotANumber}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Text: s, Err: ErrNotFinite}
	}
	return v, nil
}

// ReadStart reads a single line from r and parses it with ParseStart.
// A final line without a trailing newline is accepted.
func ReadStart(r io.Reader) (float64, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("fixedpoint: read input: %w", err)
	}
	return ParseStart(line)
}

// ReadStartContext is ReadStart that gives up when ctx is done. A reader
// blocked on a terminal cannot be interrupted, so the read runs in its own
// goroutine and is abandoned on cancellation.
func ReadStartContext(ctx context.Context, r io.Reader) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	type read struct {
		v   float64
		err error
	}
	done := make(chan read, 1)
	go func() {
		v, err := ReadStart(r)
		done <- read{v, err}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
	case res := <-done:
		return res.v, res.err
	}
}
