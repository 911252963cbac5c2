// internal/writers/record.go
package writers

import (
	"fmt"
	"io"

	"phichain-core/ledger"
	"phichain/internal/output"
	"phichain/internal/pretty"
)

// Formats lists the record output formats in help order.
var Formats = []string{"text", "json", "jsonl", "pretty"}

// ValidFormat reports whether name is a known record output format.
func ValidFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// StartRecordWriter spins up a writer goroutine for ledger records.
// The jsonl format streams; the others buffer until the channel closes.
func StartRecordWriter(out io.Writer, format string, popt pretty.Options, bufSize int) (chan<- ledger.Record, <-chan error) {
	if format == "jsonl" {
		return StartRecordJSONLWriter(out, bufSize)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan ledger.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []ledger.Record
		for r := range in {
			buf = append(buf, r)
		}

		var err error
		switch format {
		case "json":
			err = output.WriteRecordJSON(out, buf)
		case "text":
			err = output.WriteRecordText(out, buf)
		case "pretty":
			err = pretty.WriteRecords(out, buf, popt)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}
