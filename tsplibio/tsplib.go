// Package tsplibio reads TSPLIB EUC_2D instance files and reads/writes the
// accompanying .tspsol solution format.
package tsplibio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hexway-oss/tspkit/geometry"
)

// ErrCannotOpen indicates the instance or solution file could not be opened.
var ErrCannotOpen = errors.New("tsplibio: cannot open file")

// ErrMalformedHeader indicates DIMENSION or NODE_COORD_SECTION was missing
// or unparsable.
var ErrMalformedHeader = errors.New("tsplibio: malformed header")

// ErrInvalidCoordinates indicates a node line's id was out of [1,n] or its
// coordinates failed to parse.
var ErrInvalidCoordinates = errors.New("tsplibio: invalid coordinate line")

// ReadTSPLIB reads a TSPLIB EUC_2D file, returning the parsed nodes in id
// order and the declared dimension. Grounded on the DIMENSION/
// NODE_COORD_SECTION/EOF state machine of the original TSPLIB reader: a
// one-pass scanner that looks for DIMENSION before NODE_COORD_SECTION, then
// reads "id x y" triples until EOF.
func ReadTSPLIB(path string) ([]geometry.Node, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrCannotOpen, path, err)
	}
	defer f.Close()

	n := -1
	reading := false
	var nodes []geometry.Node

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !reading {
			if strings.HasPrefix(line, "DIMENSION") {
				v, perr := parseHeaderInt(line)
				if perr != nil {
					return nil, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, perr)
				}
				n = v
			} else if strings.HasPrefix(line, "NODE_COORD_SECTION") {
				if n <= 0 {
					return nil, 0, ErrMalformedHeader
				}
				nodes = make([]geometry.Node, n)
				reading = true
			}
			continue
		}

		if strings.HasPrefix(line, "EOF") {
			break
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinates, line)
		}
		id, err1 := strconv.Atoi(fields[0])
		x, err2 := strconv.ParseFloat(fields[1], 64)
		y, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil || id < 1 || id > n {
			return nil, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinates, line)
		}
		nodes[id-1] = geometry.Node{ID: id - 1, X: x, Y: y}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}
	if nodes == nil {
		return nil, 0, ErrMalformedHeader
	}

	return nodes, n, nil
}

// parseHeaderInt extracts the integer value from a "KEY: value" or
// "KEY value" header line.
func parseHeaderInt(line string) (int, error) {
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		return strconv.Atoi(strings.TrimSpace(line[idx+1:]))
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, ErrMalformedHeader
	}

	return strconv.Atoi(fields[len(fields)-1])
}
