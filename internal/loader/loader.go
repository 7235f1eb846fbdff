// Package loader reads the route-file format described in spec.md §6: one
// prefix per line, "address/length[ value]", dotted-quad or colon-hex,
// blank lines and lines starting with "#" ignored.
package loader

import (
	"bufio"
	"io"
	"strings"

	"github.com/hariguchi/art"
	"github.com/hariguchi/art/internal/addrconv"
	"github.com/pkg/errors"
)

// Stats summarizes the outcome of a Load call.
type Stats struct {
	Lines     int
	Inserted  int
	Duplicate int
	Skipped   int
}

// Load reads routes from r and inserts each into tbl, one per line. Lines
// with no "/" are ignored (per the data file format), as are empty lines
// and lines beginning with "#" once leading/trailing whitespace is
// trimmed. A line may carry a trailing whitespace-separated value, stored
// verbatim as the route's Value; a line with no value stores a nil Value.
//
// Load stops and returns a line-numbered error on the first prefix that
// fails to parse or fails to insert for a reason other than "already
// exists" (duplicates are tallied in Stats, not treated as errors).
func Load(tbl *art.Table, r io.Reader) (Stats, error) {
	var st Stats
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		st.Lines = lineNo
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, "/") {
			st.Skipped++
			continue
		}

		fields := strings.Fields(line)
		cidr := fields[0]
		var value any
		if len(fields) > 1 {
			value = strings.Join(fields[1:], " ")
		}

		prefix, err := addrconv.ParsePrefix(cidr)
		if err != nil {
			return st, errors.Wrapf(err, "line %d", lineNo)
		}
		dest, plen, err := addrconv.ToDest(prefix)
		if err != nil {
			return st, errors.Wrapf(err, "line %d", lineNo)
		}
		entry, err := tbl.NewRoute(dest[:], plen, value)
		if err != nil {
			return st, errors.Wrapf(err, "line %d: building route for %s", lineNo, cidr)
		}
		got, err := tbl.Insert(entry)
		if err != nil {
			return st, errors.Wrapf(err, "line %d: inserting %s", lineNo, cidr)
		}
		if got != entry {
			st.Duplicate++
			continue
		}
		st.Inserted++
	}
	if err := scanner.Err(); err != nil {
		return st, errors.Wrapf(err, "reading route file at line %d", lineNo)
	}
	return st, nil
}
