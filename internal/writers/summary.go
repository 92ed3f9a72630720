// internal/writers/summary.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"popsum-core/aggregate"
	"popsum/internal/jsonlutil"
	"popsum/internal/output"
)

// StartSummaryWriter spins up a writer goroutine for aggregate rows.
// Text and JSONL stream row by row; JSON buffers until the channel
// closes (the array is one document). The error channel yields exactly
// one value after the input channel is closed and drained.
func StartSummaryWriter(out io.Writer, format string, header bool, bufSize int) (chan<- aggregate.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan aggregate.Row, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []aggregate.Row
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteSummaryJSON(out, buf)
		case output.FormatJSONL:
			pipe, done := jsonlutil.Start(out, bufSize,
				func(enc *json.Encoder, r aggregate.Row) error {
					return output.EncodeSummaryLine(enc, r)
				}, IsBrokenPipe)
			for r := range in {
				pipe <- r
			}
			close(pipe)
			err = <-done
		case output.FormatText:
			err = output.StreamSummary(out, in, header)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so senders never block after a writer error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
