package align

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Text is a string prepared for repeated similarity scoring. It caches a
// sequence matcher indexed on the text, so scoring one text against many
// builds that index once. A Text is not safe for concurrent use.
type Text struct {
	raw     string
	chars   []string
	matcher *difflib.SequenceMatcher
}

// Prepare splits s into code points for scoring.
func Prepare(s string) *Text {
	return &Text{raw: s, chars: strings.Split(s, "")}
}

// PrepareAll prepares every string of ss.
func PrepareAll(ss []string) []*Text {
	texts := make([]*Text, len(ss))
	for i, s := range ss {
		texts[i] = Prepare(s)
	}
	return texts
}

// String returns the original text.
func (t *Text) String() string { return t.raw }

// Ratio returns the similarity of a and b in [0,1]: 2*M/(len(a)+len(b))
// where M is the number of code points in matching blocks. Two empty
// texts score 1, one empty text scores 0.
func Ratio(a, b *Text) float64 {
	switch {
	case a.raw == b.raw:
		return 1
	case len(a.chars) == 0 || len(b.chars) == 0:
		return 0
	}
	if b.matcher == nil {
		b.matcher = difflib.NewMatcher(nil, b.chars)
	}
	b.matcher.SetSeq1(a.chars)
	return b.matcher.Ratio()
}

// Similarity is Ratio over plain strings.
func Similarity(a, b string) float64 {
	return Ratio(Prepare(a), Prepare(b))
}
