package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/pagesim/sim/trace"
)

// Compression selects how a report file is encoded on disk.
type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionLZ4    Compression = "lz4"
	CompressionSnappy Compression = "snappy"
)

// CompressionForPath picks the encoding from the file extension:
// ".lz4" is LZ4 frame format, ".sz" is the snappy framing format, anything else is plain text.
func CompressionForPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lz4":
		return CompressionLZ4
	case ".sz":
		return CompressionSnappy
	default:
		return CompressionNone
	}
}

// WriteFile writes one report per result to path, separated by blank lines.
func WriteFile(path string, results ...*trace.Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing report file: %w", closeErr)
		}
	}()

	compression := CompressionForPath(path)
	enc := newEncoder(file, compression)
	buf := bufio.NewWriter(enc)
	for i, r := range results {
		if i > 0 {
			if _, err := buf.WriteString("\n"); err != nil {
				return err
			}
		}
		if err := WriteReport(buf, r); err != nil {
			return err
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing %s stream: %w", compression, err)
	}

	logrus.Debugf("Wrote %d report(s) to %s (%s)", len(results), path, compression)
	return nil
}

// ReadFile returns the decoded text of a report file written by WriteFile.
func ReadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening report file: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	switch CompressionForPath(path) {
	case CompressionLZ4:
		r = lz4.NewReader(file)
	case CompressionSnappy:
		r = snappy.NewReader(file)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading report file: %w", err)
	}
	return string(data), nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func newEncoder(w io.Writer, c Compression) io.WriteCloser {
	switch c {
	case CompressionLZ4:
		return lz4.NewWriter(w)
	case CompressionSnappy:
		return snappy.NewBufferedWriter(w)
	default:
		return nopCloser{w}
	}
}
