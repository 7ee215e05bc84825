package dict

import (
	"unicode/utf8"
)

const bmpSize = 0x10000

// capBit is the high bit of a length mask. It stands in for every key
// length >= 64, since the mask can only represent lengths 1..=64 exactly.
const capBit = 63

// Pair is one lexicon entry: a source phrase and its replacement.
type Pair struct {
	Key   string
	Value string
}

// DictMaxLen is one OpenCC lexicon: a phrase map plus precomputed length
// metadata used to prune impossible matches before any map lookup.
//
// A table carries three layers of gating data:
//
//   - KeyLengthMask: global presence mask. Bit n-1 is set iff any key of
//     exactly n characters exists (n in 1..=64); bit 63 additionally covers
//     keys of length >= 64.
//   - StarterLenMask: per first-character presence masks with the same bit
//     convention, sparse over all starters (BMP and astral). This is the
//     authoritative serialized form.
//   - firstLenMask64 / firstCharMaxLen: dense BMP arrays rebuilt from the
//     entries at load time, indexed by the starter's code point. These are
//     the authoritative runtime form for the hot path.
//
// Tables are immutable once built; all gate methods are safe for
// concurrent readers.
type DictMaxLen struct {
	// Entries maps a source phrase to its replacement.
	Entries map[string]string `cbor:"map"`

	// MaxLen and MinLen are the extremal key lengths in characters.
	// An empty table reports (1, 1).
	MaxLen int `cbor:"max_len"`
	MinLen int `cbor:"min_len"`

	// KeyLengthMask is the global key-length presence mask.
	KeyLengthMask uint64 `cbor:"key_length_mask"`

	// StarterLenMask records, per starter rune, which key lengths exist.
	StarterLenMask map[rune]uint64 `cbor:"starter_len_mask"`

	// Dense BMP accelerators, rebuilt on load and never serialized.
	firstLenMask64  []uint64
	firstCharMaxLen []uint8

	// Sparse per-starter maximum lengths for astral starters only.
	astralCap map[rune]uint8
}

// setLenBit sets the bit for a key of len characters; lengths >= 64
// collapse onto the cap bit.
func setLenBit(mask *uint64, n int) {
	b := n - 1
	if b > capBit {
		b = capBit
	}
	*mask |= 1 << uint(b)
}

// maxLenFromMask returns the largest representable length in mask (1..=64),
// or 0 for an empty mask.
func maxLenFromMask(mask uint64) int {
	if mask == 0 {
		return 0
	}
	n := 64
	for mask>>uint(n-1)&1 == 0 {
		n--
	}
	return n
}

// FromPairs builds an immutable table from (key, value) pairs and
// materializes all runtime indexes. Duplicate keys overwrite, last one
// wins. Keys are counted in characters, not bytes.
func FromPairs(pairs []Pair) *DictMaxLen {
	d := &DictMaxLen{
		Entries:        make(map[string]string, len(pairs)),
		StarterLenMask: make(map[rune]uint64),
	}
	for _, p := range pairs {
		if p.Key == "" {
			continue
		}
		n := utf8.RuneCountInString(p.Key)
		d.Entries[p.Key] = p.Value
		setLenBit(&d.KeyLengthMask, n)
		c0, _ := utf8.DecodeRuneInString(p.Key)
		m := d.StarterLenMask[c0]
		setLenBit(&m, n)
		d.StarterLenMask[c0] = m
		if n > d.MaxLen {
			d.MaxLen = n
		}
		if d.MinLen == 0 || n < d.MinLen {
			d.MinLen = n
		}
	}
	if len(d.Entries) == 0 {
		d.MaxLen, d.MinLen = 1, 1
	}
	d.populate()
	return d
}

// populate rebuilds the dense BMP arrays and the sparse astral caps from
// the entry map. It also reconstructs StarterLenMask when a legacy blob
// arrives without one. Must be called before the table is queried.
func (d *DictMaxLen) populate() {
	d.firstLenMask64 = make([]uint64, bmpSize)
	d.firstCharMaxLen = make([]uint8, bmpSize)
	d.astralCap = make(map[rune]uint8)
	rebuildSparse := len(d.StarterLenMask) == 0 && len(d.Entries) > 0
	if rebuildSparse {
		d.StarterLenMask = make(map[rune]uint64)
	}

	for k := range d.Entries {
		c0, _ := utf8.DecodeRuneInString(k)
		n := utf8.RuneCountInString(k)
		cap8 := uint8(255)
		if n < 255 {
			cap8 = uint8(n)
		}
		if rebuildSparse {
			m := d.StarterLenMask[c0]
			setLenBit(&m, n)
			d.StarterLenMask[c0] = m
		}
		if c0 < bmpSize {
			setLenBit(&d.firstLenMask64[c0], n)
			if cap8 > d.firstCharMaxLen[c0] {
				d.firstCharMaxLen[c0] = cap8
			}
		} else if cap8 > d.astralCap[c0] {
			d.astralCap[c0] = cap8
		}
	}
}

// isPopulated reports whether the dense BMP arrays have been built.
func (d *DictMaxLen) isPopulated() bool {
	return len(d.firstLenMask64) == bmpSize && len(d.firstCharMaxLen) == bmpSize
}

// Len returns the number of entries.
func (d *DictMaxLen) Len() int { return len(d.Entries) }

// Get performs an exact phrase lookup.
func (d *DictMaxLen) Get(key string) (string, bool) {
	v, ok := d.Entries[key]
	return v, ok
}

// HasKeyLen reports whether any key of exactly n characters exists.
// For n >= 64 it tests the cap bit, which stands for "any length >= 64".
func (d *DictMaxLen) HasKeyLen(n int) bool {
	if n < 1 {
		return false
	}
	b := n - 1
	if b > capBit {
		b = capBit
	}
	return d.KeyLengthMask>>uint(b)&1 != 0
}

// StarterMask returns the per-starter length mask for c: dense for BMP
// starters, sparse otherwise.
func (d *DictMaxLen) StarterMask(c rune) uint64 {
	if c >= 0 && c < bmpSize && d.isPopulated() {
		return d.firstLenMask64[c]
	}
	return d.StarterLenMask[c]
}

// StarterAllows reports whether any key of n characters starts with c.
// Lengths above 64 are gated by the per-starter maximum length instead of
// the mask, since the mask cannot represent them exactly.
func (d *DictMaxLen) StarterAllows(c rune, n int) bool {
	if n < 1 {
		return false
	}
	if c >= 0 && c < bmpSize && d.isPopulated() {
		if n <= 64 {
			return d.firstLenMask64[c]>>uint(n-1)&1 != 0
		}
		return n <= int(d.firstCharMaxLen[c])
	}
	if n > 64 {
		if c >= bmpSize {
			return n <= int(d.astralCap[c])
		}
		return false
	}
	return d.StarterLenMask[c]>>uint(n-1)&1 != 0
}
