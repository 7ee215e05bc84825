package dict

import (
	"sync/atomic"
)

// Bundle owns the sixteen OpenCC lexicon tables plus a lazy cache of the
// starter unions the conversion rounds need. Tables are immutable after
// load; the union cache is set-once and safe for concurrent readers.
type Bundle struct {
	STCharacters         *DictMaxLen `cbor:"st_characters"`
	STPhrases            *DictMaxLen `cbor:"st_phrases"`
	TSCharacters         *DictMaxLen `cbor:"ts_characters"`
	TSPhrases            *DictMaxLen `cbor:"ts_phrases"`
	TWPhrases            *DictMaxLen `cbor:"tw_phrases"`
	TWPhrasesRev         *DictMaxLen `cbor:"tw_phrases_rev"`
	TWVariants           *DictMaxLen `cbor:"tw_variants"`
	TWVariantsRev        *DictMaxLen `cbor:"tw_variants_rev"`
	TWVariantsRevPhrases *DictMaxLen `cbor:"tw_variants_rev_phrases"`
	HKVariants           *DictMaxLen `cbor:"hk_variants"`
	HKVariantsRev        *DictMaxLen `cbor:"hk_variants_rev"`
	HKVariantsRevPhrases *DictMaxLen `cbor:"hk_variants_rev_phrases"`
	JPShinjitaiChars     *DictMaxLen `cbor:"jps_characters"`
	JPShinjitaiPhrases   *DictMaxLen `cbor:"jps_phrases"`
	JPVariants           *DictMaxLen `cbor:"jp_variants"`
	JPVariantsRev        *DictMaxLen `cbor:"jp_variants_rev"`

	unions [numUnionKeys]atomic.Pointer[StarterUnion]
}

// UnionKey names one of the fixed round compositions used by the
// conversion configs. Each key owns one slot in the bundle's union cache.
type UnionKey int

const (
	// UnionS2T covers STPhrases + STCharacters.
	UnionS2T UnionKey = iota
	// UnionT2S covers TSPhrases + TSCharacters.
	UnionT2S
	// UnionTwPhrases covers TWPhrases alone.
	UnionTwPhrases
	// UnionTwVariants covers TWVariants alone.
	UnionTwVariants
	// UnionTwPhrasesRev covers TWPhrasesRev alone.
	UnionTwPhrasesRev
	// UnionTwRevPair covers TWVariantsRevPhrases + TWVariantsRev.
	UnionTwRevPair
	// UnionTwRevTriple covers TWPhrasesRev + TWVariantsRevPhrases + TWVariantsRev.
	UnionTwRevTriple
	// UnionHkVariants covers HKVariants alone.
	UnionHkVariants
	// UnionHkRevPair covers HKVariantsRevPhrases + HKVariantsRev.
	UnionHkRevPair
	// UnionJpVariants covers JPVariants alone.
	UnionJpVariants
	// UnionJpRevTriple covers JPShinjitaiPhrases + JPShinjitaiChars + JPVariantsRev.
	UnionJpRevTriple

	numUnionKeys
)

// RoundTables returns the member tables of key, in probe order.
func (b *Bundle) RoundTables(key UnionKey) []*DictMaxLen {
	switch key {
	case UnionS2T:
		return []*DictMaxLen{b.STPhrases, b.STCharacters}
	case UnionT2S:
		return []*DictMaxLen{b.TSPhrases, b.TSCharacters}
	case UnionTwPhrases:
		return []*DictMaxLen{b.TWPhrases}
	case UnionTwVariants:
		return []*DictMaxLen{b.TWVariants}
	case UnionTwPhrasesRev:
		return []*DictMaxLen{b.TWPhrasesRev}
	case UnionTwRevPair:
		return []*DictMaxLen{b.TWVariantsRevPhrases, b.TWVariantsRev}
	case UnionTwRevTriple:
		return []*DictMaxLen{b.TWPhrasesRev, b.TWVariantsRevPhrases, b.TWVariantsRev}
	case UnionHkVariants:
		return []*DictMaxLen{b.HKVariants}
	case UnionHkRevPair:
		return []*DictMaxLen{b.HKVariantsRevPhrases, b.HKVariantsRev}
	case UnionJpVariants:
		return []*DictMaxLen{b.JPVariants}
	case UnionJpRevTriple:
		return []*DictMaxLen{b.JPShinjitaiPhrases, b.JPShinjitaiChars, b.JPVariantsRev}
	}
	return nil
}

// UnionFor returns the cached starter union for key, building it on first
// use. First writer wins; concurrent callers that lose the race adopt the
// stored union, so repeated calls always return the same pointer.
func (b *Bundle) UnionFor(key UnionKey) *StarterUnion {
	slot := &b.unions[key]
	if u := slot.Load(); u != nil {
		return u
	}
	u := BuildUnion(b.RoundTables(key))
	if slot.CompareAndSwap(nil, u) {
		return u
	}
	return slot.Load()
}

// tableNames lists the canonical lexicon file stem for every table field,
// in the fixed OpenCC order.
var tableNames = []string{
	"STCharacters",
	"STPhrases",
	"TSCharacters",
	"TSPhrases",
	"TWPhrases",
	"TWPhrasesRev",
	"TWVariants",
	"TWVariantsRev",
	"TWVariantsRevPhrases",
	"HKVariants",
	"HKVariantsRev",
	"HKVariantsRevPhrases",
	"JPShinjitaiCharacters",
	"JPShinjitaiPhrases",
	"JPVariants",
	"JPVariantsRev",
}

// tableSlot resolves a canonical lexicon name to the bundle field that
// should hold it. Returns nil for unknown names.
func (b *Bundle) tableSlot(name string) **DictMaxLen {
	switch name {
	case "STCharacters":
		return &b.STCharacters
	case "STPhrases":
		return &b.STPhrases
	case "TSCharacters":
		return &b.TSCharacters
	case "TSPhrases":
		return &b.TSPhrases
	case "TWPhrases":
		return &b.TWPhrases
	case "TWPhrasesRev":
		return &b.TWPhrasesRev
	case "TWVariants":
		return &b.TWVariants
	case "TWVariantsRev":
		return &b.TWVariantsRev
	case "TWVariantsRevPhrases":
		return &b.TWVariantsRevPhrases
	case "HKVariants":
		return &b.HKVariants
	case "HKVariantsRev":
		return &b.HKVariantsRev
	case "HKVariantsRevPhrases":
		return &b.HKVariantsRevPhrases
	case "JPShinjitaiCharacters":
		return &b.JPShinjitaiChars
	case "JPShinjitaiPhrases":
		return &b.JPShinjitaiPhrases
	case "JPVariants":
		return &b.JPVariants
	case "JPVariantsRev":
		return &b.JPVariantsRev
	}
	return nil
}

// Table returns the table registered under the canonical lexicon name,
// or nil for unknown names.
func (b *Bundle) Table(name string) *DictMaxLen {
	slot := b.tableSlot(name)
	if slot == nil {
		return nil
	}
	return *slot
}

// TableNames returns the canonical lexicon names in their fixed order.
func TableNames() []string {
	names := make([]string, len(tableNames))
	copy(names, tableNames)
	return names
}

// populateAll rebuilds the runtime indexes of every table, substituting an
// empty table for any missing field so a partially filled bundle is still
// safe to query.
func (b *Bundle) populateAll() {
	for _, name := range tableNames {
		slot := b.tableSlot(name)
		if *slot == nil {
			*slot = FromPairs(nil)
			continue
		}
		(*slot).populate()
	}
}

// NewBundle returns a structurally complete bundle with empty tables.
func NewBundle() *Bundle {
	b := &Bundle{}
	b.populateAll()
	return b
}
