// core/tabio/scan.go
package tabio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// maxLine allows very wide rows (VCFs with thousands of samples).
const maxLine = 64 * 1024 * 1024

// NewScanner returns a line scanner sized for wide tabular rows.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return sc
}

// ScanLines opens path and calls emit for each non-empty, non-comment line
// with its 1-based line number. Lines starting with '#' are skipped unless
// keepComments is true. Cancellation via ctx is honored between lines.
func ScanLines(ctx context.Context, path string, keepComments bool, emit func(ln int, line string) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := NewScanner(rc)
	ln := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		ln++
		line := sc.Text()
		if line == "" {
			continue
		}
		if !keepComments && strings.HasPrefix(line, "#") {
			continue
		}
		if err := emit(ln, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: scan: %w", path, err)
	}
	return nil
}
