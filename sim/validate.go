package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput is returned when no page tokens are supplied.
	ErrEmptyInput = errors.New("empty reference string")
	// ErrNonIntegerToken is returned when a page token is not an integer.
	ErrNonIntegerToken = errors.New("page is not an integer")
	// ErrNonPositiveFrameCount is returned when the frame count is missing, zero, or negative.
	ErrNonPositiveFrameCount = errors.New("frame count must be a positive integer")
)

// Validate parses a comma-separated reference string and a frame count.
// Whitespace around tokens is ignored and empty tokens are skipped, so
// "1, 2,,3 " yields [1 2 3]. No upper bound is placed on either value.
func Validate(rawPages, rawFrames string) ([]int, int, error) {
	pages, err := ParsePages(rawPages)
	if err != nil {
		return nil, 0, err
	}
	frames, err := ParseFrames(rawFrames)
	if err != nil {
		return nil, 0, err
	}
	return pages, frames, nil
}

// ParsePages parses the page half of Validate.
func ParsePages(raw string) ([]int, error) {
	var pages []int
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		page, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at position %d", ErrNonIntegerToken, token, len(pages)+1)
		}
		pages = append(pages, page)
	}
	if len(pages) == 0 {
		return nil, ErrEmptyInput
	}
	return pages, nil
}

// ParseFrames parses the frame-count half of Validate.
func ParseFrames(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	frames, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrNonPositiveFrameCount, raw)
	}
	if frames <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNonPositiveFrameCount, frames)
	}
	return frames, nil
}

// ValidateSequence applies the Validate checks to already-parsed input.
func ValidateSequence(pages []int, frames int) error {
	if len(pages) == 0 {
		return ErrEmptyInput
	}
	if frames <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveFrameCount, frames)
	}
	return nil
}

// FlattenReferenceLines reads newline-separated page tokens and joins them into
// the comma-delimited form accepted by Validate. A line may itself hold several
// tokens separated by commas or whitespace. Lines starting with '#' are skipped.
func FlattenReferenceLines(r io.Reader) (string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		tokens = append(tokens, fields...)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading reference string: %w", err)
	}
	return strings.Join(tokens, ","), nil
}
