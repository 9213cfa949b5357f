// Package recordio implements the line-oriented data file format shared by
// the catalog and order files: an integer count header followed by one
// semicolon-delimited record per line.
package recordio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// ErrBadHeader is returned when the count header line cannot be parsed.
var ErrBadHeader = errors.New("bad record count header")

// ReadRecords reads the count header and then up to min(count, limit)
// record lines. The header is the first line's leading field before any
// semicolon, so "3" and "3;produtos" both declare three records.
func ReadRecords(r io.Reader, limit int) ([]string, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "read header")
		}
		return nil, ErrBadHeader
	}

	header := strings.TrimSpace(sc.Text())
	header, _, _ = strings.Cut(header, ";")
	count, err := strconv.Atoi(header)
	if err != nil {
		return nil, errors.Wrapf(ErrBadHeader, "%q", header)
	}

	want := min(count, limit)
	records := make([]string, 0, max(want, 0))
	for len(records) < want && sc.Scan() {
		records = append(records, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read records")
	}
	return records, nil
}

// WriteRecords writes the count header followed by one record per line.
// The destination is fully rewritten; there is no atomic-rename step, a
// crash mid-write leaves a truncated file.
func WriteRecords(w io.Writer, records []string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(records)); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(bw, rec); err != nil {
			return errors.Wrap(err, "write record")
		}
	}
	return errors.Wrap(bw.Flush(), "flush")
}
