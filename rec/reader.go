package rec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cardiolab/hrv/rr"
)

// ErrBadLine indicates a beat line that does not parse as
// "time [label]".
var ErrBadLine = errors.New("rec: malformed beat line")

// ReadBeats parses a beat annotation stream. One beat per line: a
// timestamp in seconds, optionally followed by a label name. '#' starts a
// comment line; blank lines are skipped.
//
// Errors:
//   - ErrBadLine          — a line with no parseable timestamp or with
//     trailing garbage; the message names the line number.
//   - rr.ErrUnknownLabel  — a label outside the closed set.
//   - rr.ErrNotMonotonic  — timestamps not strictly increasing.
func ReadBeats(r io.Reader) ([]rr.Beat, error) {
	var beats []rr.Beat

	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) > 2 {
			return nil, fmt.Errorf("line %d: %d fields: %w", ln, len(fields), ErrBadLine)
		}

		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: time %q: %w", ln, fields[0], ErrBadLine)
		}

		label := rr.LabelNormal
		if len(fields) == 2 {
			label, err = rr.ParseLabel(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln, err)
			}
		}

		if n := len(beats); n > 0 && t <= beats[n-1].Time {
			return nil, fmt.Errorf("line %d: t=%.6f after t=%.6f: %w",
				ln, t, beats[n-1].Time, rr.ErrNotMonotonic)
		}
		beats = append(beats, rr.Beat{Time: t, Label: label})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadBeats: %w", err)
	}
	return beats, nil
}

// ReadFile reads a beat annotation file. See ReadBeats for the format.
func ReadFile(path string) ([]rr.Beat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	beats, err := ReadBeats(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}
	return beats, nil
}
