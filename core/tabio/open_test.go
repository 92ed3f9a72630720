// core/tabio/open_test.go
package tabio

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestOpen_GzipByMagic(t *testing.T) {
	// .gz content under a suffix-less name: detection must use the magic
	// bytes, not the extension.
	fn := "open_demo.dat"
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fh)
	if _, err := zw.Write([]byte("a\tb\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fn)

	rc, err := Open(fn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "a\tb\n" {
		t.Fatalf("decompressed %q", data)
	}
}

func TestScanLines_SkipsCommentsAndCountsLines(t *testing.T) {
	fn := "scan_demo.tsv"
	if err := os.WriteFile(fn, []byte("# header\nrow1\n\nrow2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fn)

	var lines []string
	var nums []int
	err := ScanLines(context.Background(), fn, false, func(ln int, line string) error {
		lines = append(lines, line)
		nums = append(nums, ln)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(lines) != 2 || lines[0] != "row1" || lines[1] != "row2" {
		t.Fatalf("lines = %v", lines)
	}
	// Line numbers count physical lines, comments included.
	if nums[0] != 2 || nums[1] != 4 {
		t.Fatalf("line numbers = %v", nums)
	}
}
