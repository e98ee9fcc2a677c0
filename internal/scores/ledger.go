// Package scores keeps the append-only plain-text score ledger: one
// integer per line, never rewritten.
package scores

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
)

type Ledger struct {
	path string
}

func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

func (l *Ledger) Path() string { return l.path }

// Append writes score as a new line at the end of the ledger, creating the
// file if needed.
func (l *Ledger) Append(score int) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open score ledger: %w", err)
	}
	if _, err := fmt.Fprintln(f, score); err != nil {
		f.Close()
		return fmt.Errorf("append score: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close score ledger: %w", err)
	}
	return nil
}

// Load reads every score in the ledger. Scores are separated by any
// whitespace. A missing ledger is an empty history. Reading stops at the
// first token that is not an integer; the scores before it are returned
// together with the error.
func (l *Ledger) Load() ([]int, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open score ledger: %w", err)
	}
	defer f.Close()

	var scores []int
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return scores, fmt.Errorf("score ledger %s: bad entry %q: %w", l.path, sc.Text(), err)
		}
		scores = append(scores, n)
	}
	if err := sc.Err(); err != nil {
		return scores, fmt.Errorf("read score ledger: %w", err)
	}
	return scores, nil
}

// Top returns at most n scores, highest first. The input is not modified.
func Top(scores []int, n int) []int {
	sorted := make([]int, len(scores))
	copy(sorted, scores)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if n < len(sorted) {
		sorted = sorted[:max(n, 0)]
	}
	return sorted
}
