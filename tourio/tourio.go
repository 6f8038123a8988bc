// Package tourio reads city files and writes tour files.
//
// Input is a stream of whitespace-separated integer triples "id x y". Any
// whitespace (spaces, tabs, newlines) separates fields, so a triple may span
// lines. The id is kept on the City but the position in the stream defines
// the city index.
//
// Output is "<input>.tour": the total cost on the first line, then one city
// index per line in visiting order.
package tourio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/tsptour/city"
	"github.com/katalvlaran/tsptour/tsp"
)

// OutputSuffix is appended to the input path to name the result file.
const OutputSuffix = ".tour"

var (
	// ErrUnreadableInput wraps any failure to open or read the input file.
	ErrUnreadableInput = errors.New("tourio: unable to read input")

	// ErrUnwritableOutput wraps any failure to create or write the result file.
	ErrUnwritableOutput = errors.New("tourio: unable to write output")
)

// Load opens path and reads its cities.
func Load(path string) ([]city.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses integer triples until EOF or the first token that is not an
// integer. A trailing incomplete triple is dropped.
func Read(r io.Reader) ([]city.City, error) {
	var (
		sc     = bufio.NewScanner(r)
		cities []city.City
		triple [3]int
		count  int
		v      int
		err    error
	)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if v, err = strconv.Atoi(sc.Text()); err != nil {
			break
		}
		triple[count] = v
		count++
		if count == len(triple) {
			cities = append(cities, city.City{ID: triple[0], X: triple[1], Y: triple[2]})
			count = 0
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}

	return cities, nil
}

// OutputPath returns the result file name for an input path.
func OutputPath(input string) string {
	return input + OutputSuffix
}

// Write emits the cost followed by the visiting order, one value per line.
func Write(w io.Writer, t *tsp.Tour) error {
	if t == nil {
		return tsp.ErrNilTour
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, t.Cost())
	var i int
	for i = 0; i < t.Len(); i++ {
		fmt.Fprintln(bw, t.At(i))
	}

	return bw.Flush()
}

// WriteFile writes t to OutputPath(input) and returns that path.
func WriteFile(input string, t *tsp.Tour) (string, error) {
	path := OutputPath(input)
	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}
	if err = Write(f, t); err != nil {
		_ = f.Close()
		return path, fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}
	if err = f.Close(); err != nil {
		return path, fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}

	return path, nil
}
