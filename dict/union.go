package dict

// StarterUnion aggregates the starter-length metadata of every table in
// one conversion round, so the match loop does a single gate per position
// instead of one per table.
//
// BMP starters are dense (mask and cap arrays indexed by code point);
// astral starters stay sparse. AnyLenMask and AnyMaxLen union the global
// masks and maxima of all member tables.
type StarterUnion struct {
	BMPMask    []uint64
	BMPCap     []uint8
	AstralMask map[rune]uint64
	AstralCap  map[rune]uint8

	AnyLenMask uint64
	AnyMaxLen  int
}

// BuildUnion merges the per-starter masks and caps of dicts. The member
// tables must be populated; order is irrelevant for the union itself
// (probe order matters only at match time).
func BuildUnion(dicts []*DictMaxLen) *StarterUnion {
	u := &StarterUnion{
		BMPMask:    make([]uint64, bmpSize),
		BMPCap:     make([]uint8, bmpSize),
		AstralMask: make(map[rune]uint64),
		AstralCap:  make(map[rune]uint8),
	}
	for _, d := range dicts {
		u.AnyLenMask |= d.KeyLengthMask
		if d.MaxLen > u.AnyMaxLen {
			u.AnyMaxLen = d.MaxLen
		}
		for c, mask := range d.StarterLenMask {
			if mask == 0 {
				continue
			}
			var cap8 uint8
			if c < bmpSize {
				cap8 = d.firstCharMaxLen[c]
			} else {
				cap8 = d.astralCap[c]
			}
			if cap8 == 0 {
				cap8 = uint8(maxLenFromMask(mask))
			}
			if c < bmpSize {
				u.BMPMask[c] |= mask
				if cap8 > u.BMPCap[c] {
					u.BMPCap[c] = cap8
				}
			} else {
				u.AstralMask[c] |= mask
				if cap8 > u.AstralCap[c] {
					u.AstralCap[c] = cap8
				}
			}
		}
	}
	return u
}

// Starter returns the length mask and maximum key length for runes
// starting at c, or (0, 0) when no member table has a key starting there.
func (u *StarterUnion) Starter(c rune) (uint64, int) {
	if c >= 0 && c < bmpSize {
		return u.BMPMask[c], int(u.BMPCap[c])
	}
	return u.AstralMask[c], int(u.AstralCap[c])
}

// StarterAllows reports whether any member table has a key of n characters
// starting with c.
func (u *StarterUnion) StarterAllows(c rune, n int) bool {
	if n < 1 {
		return false
	}
	mask, capN := u.Starter(c)
	if n > 64 {
		return n <= capN
	}
	return mask>>uint(n-1)&1 != 0
}
