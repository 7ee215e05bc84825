package opencc

import (
	"github.com/laisuk/opencc-fmmseg/dict"
)

// dictRound is one conversion round: the tables to probe (in precedence
// order), the hard length cap for this round, and the starter union built
// from exactly these tables.
type dictRound struct {
	dicts  []*dict.DictMaxLen
	maxLen int
	union  *dict.StarterUnion
}

func newRound(dicts []*dict.DictMaxLen, union *dict.StarterUnion) dictRound {
	maxLen := 1
	for _, d := range dicts {
		if d.MaxLen > maxLen {
			maxLen = d.MaxLen
		}
	}
	return dictRound{dicts: dicts, maxLen: maxLen, union: union}
}

// DictRefs is a conversion program: one to three rounds applied in order,
// the output of each round feeding the next. Rounds are plain data; the
// unions they carry are shared with the bundle's cache.
type DictRefs struct {
	rounds []dictRound
}

// NewDictRefs starts a program with its required first round.
func NewDictRefs(dicts []*dict.DictMaxLen, union *dict.StarterUnion) *DictRefs {
	return &DictRefs{rounds: []dictRound{newRound(dicts, union)}}
}

// WithRound appends a further round (programs have at most three).
func (r *DictRefs) WithRound(dicts []*dict.DictMaxLen, union *dict.StarterUnion) *DictRefs {
	r.rounds = append(r.rounds, newRound(dicts, union))
	return r
}

// ApplySegmentReplace feeds input through every round using the supplied
// segment-replace function.
func (r *DictRefs) ApplySegmentReplace(input string,
	replace func(string, []*dict.DictMaxLen, int, *dict.StarterUnion) string) string {
	out := input
	for _, round := range r.rounds {
		out = replace(out, round.dicts, round.maxLen, round.union)
	}
	return out
}
