// Package align implements global sequence alignment (Needleman-Wunsch)
// and the character-level similarity ratio used to score elements.
package align

import (
	"errors"
	"fmt"
)

// None marks the absent side of a Pair.
const None = -1

// Default gap penalties for row-level and column-level alignment.
const (
	RowGap    = -0.15
	ColumnGap = -0.30
)

// ErrLimit indicates that an alignment matrix would exceed the configured size.
var ErrLimit = errors.New("alignment size limit exceeded")

// LimitError carries the dimensions of a refused alignment.
type LimitError struct {
	Level string // "rows" or "columns"
	N     int
	M     int
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s alignment %dx%d exceeds limit of %d cells", e.Level, e.N, e.M, e.Limit)
}

func (e *LimitError) Unwrap() error {
	return ErrLimit
}

// CheckLimit returns a *LimitError when an n x m alignment exceeds limit.
// A limit <= 0 disables the check.
func CheckLimit(level string, n, m, limit int) error {
	if limit > 0 && n > 0 && m > limit/n {
		return &LimitError{Level: level, N: n, M: m, Limit: limit}
	}
	return nil
}

// Pair is one step of an alignment: 0-based positions into the two
// sequences, with None on the absent side.
type Pair struct {
	A int
	B int
}

// Matched reports whether both sides are present.
func (p Pair) Matched() bool { return p.A != None && p.B != None }

// Inserted reports whether only the second sequence has an element.
func (p Pair) Inserted() bool { return p.A == None }

// Deleted reports whether only the first sequence has an element.
func (p Pair) Deleted() bool { return p.B == None }

type move uint8

const (
	moveDiag move = iota
	moveDelete
	moveInsert
)

// Align computes the global alignment of seqA and seqB. score rates a
// match in [0,1]; gap is added for every unmatched element. Ties prefer
// diagonal over delete over insert. When maxCells > 0 and len(seqA)*len(seqB)
// exceeds it, a *LimitError is returned before any matrix is allocated.
func Align[T any](seqA, seqB []T, score func(a, b T) float64, gap float64, maxCells int) ([]Pair, error) {
	return AlignLevel("sequence", seqA, seqB, score, gap, maxCells)
}

// AlignLevel is Align with level naming the alignment in a *LimitError.
func AlignLevel[T any](level string, seqA, seqB []T, score func(a, b T) float64, gap float64, maxCells int) ([]Pair, error) {
	n, m := len(seqA), len(seqB)
	if err := CheckLimit(level, n, m, maxCells); err != nil {
		return nil, err
	}

	width := m + 1
	scores := make([]float64, (n+1)*width)
	moves := make([]move, (n+1)*width)

	for i := 1; i <= n; i++ {
		scores[i*width] = scores[(i-1)*width] + gap
		moves[i*width] = moveDelete
	}
	for j := 1; j <= m; j++ {
		scores[j] = scores[j-1] + gap
		moves[j] = moveInsert
	}

	for i := 1; i <= n; i++ {
		a := seqA[i-1]
		row, prev := i*width, (i-1)*width
		for j := 1; j <= m; j++ {
			best, ptr := scores[prev+j-1]+score(a, seqB[j-1]), moveDiag
			if del := scores[prev+j] + gap; del > best {
				best, ptr = del, moveDelete
			}
			if ins := scores[row+j-1] + gap; ins > best {
				best, ptr = ins, moveInsert
			}
			scores[row+j] = best
			moves[row+j] = ptr
		}
	}

	pairs := make([]Pair, 0, max(n, m))
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && moves[i*width+j] == moveDiag:
			pairs = append(pairs, Pair{A: i - 1, B: j - 1})
			i--
			j--
		case i > 0 && (j == 0 || moves[i*width+j] == moveDelete):
			pairs = append(pairs, Pair{A: i - 1, B: None})
			i--
		default:
			pairs = append(pairs, Pair{A: None, B: j - 1})
			j--
		}
	}

	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
	return pairs, nil
}
