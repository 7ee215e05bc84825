package opencc

import (
	"math/bits"
	"strings"
	"unicode/utf8"

	"github.com/laisuk/opencc-fmmseg/dict"
)

// forEachLenDec walks candidate match lengths in descending order,
// restricted to the lengths admitted by mask and bounded by capHere.
// f returns true to stop early (a match was taken).
//
// Bit n-1 of mask stands for length n; bit 63 is the CAP bit and stands
// for every length >= 64. When capHere exceeds 64 and the CAP bit is set,
// the lengths capHere..65 and then 64 are tried explicitly before the
// exact bits below 64.
func forEachLenDec(mask uint64, capHere int, f func(n int) bool) {
	if mask == 0 || capHere <= 0 {
		return
	}
	const capMask = uint64(1) << 63
	if capHere > 64 && mask&capMask != 0 {
		for n := capHere; n >= 65; n-- {
			if f(n) {
				return
			}
		}
		if f(64) {
			return
		}
	}
	limit := capHere
	if limit > 64 {
		limit = 64
	}
	var rangeMask uint64
	if limit == 64 {
		rangeMask = ^uint64(0)
	} else {
		rangeMask = uint64(1)<<uint(limit) - 1
	}
	m := mask & rangeMask
	if capHere > 64 {
		m &^= capMask // already consumed via the >64 path
	}
	for m != 0 {
		bit := 63 - bits.LeadingZeros64(m)
		if f(bit + 1) {
			return
		}
		m &^= uint64(1) << uint(bit)
	}
}

// convertSpan runs forward maximum matching over the character span
// [lo, hi) of text and appends the converted form to out.
//
// offs caches the byte offset of every character of text (plus the final
// len(text)), so candidate substrings are zero-copy slices. dicts are
// probed in order; the first hit at the longest viable length wins. union
// must be built from exactly these dicts.
func convertSpan(text string, offs []int, lo, hi int,
	dicts []*dict.DictMaxLen, maxLen int, union *dict.StarterUnion,
	out *strings.Builder) {
	//
	multi := len(dicts) > 1
	pos := lo
	for pos < hi {
		c0, _ := utf8.DecodeRuneInString(text[offs[pos]:])
		mask, cap0 := union.Starter(c0)
		if mask == 0 || cap0 == 0 {
			out.WriteString(text[offs[pos]:offs[pos+1]])
			pos++
			continue
		}

		capHere := hi - pos
		if maxLen < capHere {
			capHere = maxLen
		}
		if cap0 < capHere {
			capHere = cap0
		}

		matched := false
		forEachLenDec(mask, capHere, func(n int) bool {
			candidate := ""
			for _, d := range dicts {
				if !d.HasKeyLen(n) {
					continue
				}
				if multi && !d.StarterAllows(c0, n) {
					continue
				}
				if candidate == "" {
					candidate = text[offs[pos]:offs[pos+n]]
				}
				if v, ok := d.Get(candidate); ok {
					out.WriteString(v)
					pos += n
					matched = true
					return true
				}
			}
			return false
		})
		if !matched {
			out.WriteString(text[offs[pos]:offs[pos+1]])
			pos++
		}
	}
}

// convertPlain is the unions-free fallback: plain greedy maximum matching
// over the whole string, every length from maxLen down to 1. It is used
// for the single-character script-detection passes where building a union
// would cost more than it saves.
func convertPlain(text string, dicts []*dict.DictMaxLen, maxLen int) string {
	if text == "" {
		return ""
	}
	offs := runeOffsets(text)
	n := len(offs) - 1
	var out strings.Builder
	out.Grow(len(text) + len(text)/10)
	pos := 0
	for pos < n {
		rem := n - pos
		limit := maxLen
		if rem < limit {
			limit = rem
		}
		matched := false
		for length := limit; length >= 1 && !matched; length-- {
			candidate := text[offs[pos]:offs[pos+length]]
			for _, d := range dicts {
				if !d.HasKeyLen(length) {
					continue
				}
				if v, ok := d.Get(candidate); ok {
					out.WriteString(v)
					pos += length
					matched = true
					break
				}
			}
		}
		if !matched {
			out.WriteString(text[offs[pos]:offs[pos+1]])
			pos++
		}
	}
	return out.String()
}

// runeOffsets returns the byte offset of every character of s, with one
// extra final entry equal to len(s).
func runeOffsets(s string) []int {
	offs := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	offs = append(offs, len(s))
	return offs
}
