// Package sampledata reads the demo host's sample record format: a
// CSV of axis-aligned rectangles with an opaque ID, one record per
// line. Grounded on the teacher's pkg/lds/lds_csv reader (header-skip,
// async channel-of-records, per-line error capture), generalised from
// LINZ parcel polygons down to the plain x,y,w,h,id shape this demo
// actually needs.
package sampledata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Record is one successfully parsed CSV row.
type Record struct {
	LineNum int
	ID      string
	X, Y    float64
	W, H    float64
}

// Entry is a Record or, if parsing that line failed, the error
// explaining why -- callers decide whether to skip or abort.
type Entry struct {
	LineNum int
	Record  Record
	Error   error
}

// ReadAll reads every record from r synchronously. The first line is
// assumed to be a header and is discarded.
func ReadAll(r io.Reader) ([]Entry, error) {
	csvR := csv.NewReader(r)
	if _, err := csvR.Read(); err != nil {
		return nil, err
	}

	lines, err := csvR.ReadAll()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		entries = append(entries, parseLine(line, i+1))
	}
	return entries, nil
}

// ReadAsync streams parsed records over a channel, closing it once r
// is exhausted or a read error terminates the scan. The first line is
// assumed to be a header and is discarded.
func ReadAsync(r io.Reader) (chan Entry, error) {
	csvR := csv.NewReader(r)
	if _, err := csvR.Read(); err != nil {
		return nil, err
	}

	out := make(chan Entry, 256)
	go func() {
		defer close(out)
		lineNum := 0
		for {
			line, err := csvR.Read()
			if err == io.EOF {
				return
			}
			lineNum++
			if err != nil {
				out <- Entry{LineNum: lineNum, Error: err}
				return
			}
			out <- parseLine(line, lineNum)
		}
	}()
	return out, nil
}

func parseLine(line []string, lineNum int) Entry {
	if len(line) != 5 {
		return Entry{LineNum: lineNum, Error: fmt.Errorf("line %d: expected 5 fields (x,y,w,h,id), got %d", lineNum, len(line))}
	}

	x, err := strconv.ParseFloat(line[0], 64)
	if err != nil {
		return Entry{LineNum: lineNum, Error: fmt.Errorf("line %d: bad x %q: %w", lineNum, line[0], err)}
	}
	y, err := strconv.ParseFloat(line[1], 64)
	if err != nil {
		return Entry{LineNum: lineNum, Error: fmt.Errorf("line %d: bad y %q: %w", lineNum, line[1], err)}
	}
	w, err := strconv.ParseFloat(line[2], 64)
	if err != nil {
		return Entry{LineNum: lineNum, Error: fmt.Errorf("line %d: bad w %q: %w", lineNum, line[2], err)}
	}
	h, err := strconv.ParseFloat(line[3], 64)
	if err != nil {
		return Entry{LineNum: lineNum, Error: fmt.Errorf("line %d: bad h %q: %w", lineNum, line[3], err)}
	}

	return Entry{
		LineNum: lineNum,
		Record: Record{
			LineNum: lineNum,
			ID:      line[4],
			X:       x,
			Y:       y,
			W:       w,
			H:       h,
		},
	}
}
