// internal/writers/sites.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"popsum-core/gerp"
	"popsum/internal/jsonlutil"
	"popsum/internal/output"
)

// StartSiteWriter spins up a writer goroutine for enriched conservation
// sites, mirroring StartSummaryWriter.
func StartSiteWriter(out io.Writer, samples []string, format string, header bool, bufSize int) (chan<- gerp.SiteCounts, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan gerp.SiteCounts, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []gerp.SiteCounts
			for sc := range in {
				buf = append(buf, sc)
			}
			err = output.WriteSitesJSON(out, samples, buf)
		case output.FormatJSONL:
			pipe, done := jsonlutil.Start(out, bufSize,
				func(enc *json.Encoder, sc gerp.SiteCounts) error {
					return output.EncodeSiteLine(enc, samples, sc)
				}, IsBrokenPipe)
			for sc := range in {
				pipe <- sc
			}
			close(pipe)
			err = <-done
		case output.FormatText:
			err = output.StreamSites(out, samples, in, header)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
