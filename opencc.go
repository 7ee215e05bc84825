package opencc

import (
	"fmt"
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/laisuk/opencc-fmmseg/dict"
)

// OpenCC is the conversion façade. Instances are cheap and share the
// immutable lexicon bundle; all methods are safe for concurrent use.
type OpenCC struct {
	dicts    *dict.Bundle
	parallel atomic.Bool

	errMu   sync.Mutex
	lastErr string
}

// New wraps a loaded bundle in a converter. Parallel segment conversion
// is enabled by default.
func New(bundle *dict.Bundle) *OpenCC {
	cc := &OpenCC{dicts: bundle}
	cc.parallel.Store(true)
	return cc
}

// NewFromBlob builds a converter from a Zstd-compressed CBOR lexicon
// blob, typically embedded into the binary with go:embed.
func NewFromBlob(blob []byte) (*OpenCC, error) {
	bundle, err := dict.LoadBlob(blob)
	if err != nil {
		return nil, err
	}
	return New(bundle), nil
}

// NewFromCompressed builds a converter from a compressed blob on disk.
func NewFromCompressed(path string) (*OpenCC, error) {
	bundle, err := dict.LoadCompressed(path)
	if err != nil {
		return nil, err
	}
	return New(bundle), nil
}

// NewFromDir builds a converter from a directory of OpenCC .txt lexicon
// files. Intended for the generator tools; production binaries load the
// precompiled blob instead.
func NewFromDir(dir string) (*OpenCC, error) {
	bundle, err := dict.FromDir(dir)
	if err != nil {
		return nil, err
	}
	tracer().Infof("lexicons loaded from %s", dir)
	return New(bundle), nil
}

// SetParallel toggles data-parallel segment conversion.
func (cc *OpenCC) SetParallel(parallel bool) { cc.parallel.Store(parallel) }

// GetParallel reports whether parallel segment conversion is enabled.
func (cc *OpenCC) GetParallel() bool { return cc.parallel.Load() }

// setLastError records msg in the converter's error slot.
func (cc *OpenCC) setLastError(msg string) {
	cc.errMu.Lock()
	cc.lastErr = msg
	cc.errMu.Unlock()
}

// LastError returns the most recent error text, or "No error".
func (cc *OpenCC) LastError() string {
	cc.errMu.Lock()
	defer cc.errMu.Unlock()
	if cc.lastErr == "" {
		return "No error"
	}
	return cc.lastErr
}

// ClearLastError resets the error slot.
func (cc *OpenCC) ClearLastError() {
	cc.errMu.Lock()
	cc.lastErr = ""
	cc.errMu.Unlock()
}

// segmentReplace adapts the package-level driver to this converter's
// parallel flag; it is the round function handed to DictRefs.
func (cc *OpenCC) segmentReplace(input string, dicts []*dict.DictMaxLen,
	maxLen int, union *dict.StarterUnion) string {
	return segmentReplace(input, dicts, maxLen, union, cc.parallel.Load())
}

// program assembles the round pipeline for a valid config.
func (cc *OpenCC) program(c Config) *DictRefs {
	b := cc.dicts
	switch c {
	case S2T:
		return NewDictRefs(b.RoundTables(dict.UnionS2T), b.UnionFor(dict.UnionS2T))
	case S2Tw:
		return NewDictRefs(b.RoundTables(dict.UnionS2T), b.UnionFor(dict.UnionS2T)).
			WithRound(b.RoundTables(dict.UnionTwVariants), b.UnionFor(dict.UnionTwVariants))
	case S2Twp:
		return NewDictRefs(b.RoundTables(dict.UnionS2T), b.UnionFor(dict.UnionS2T)).
			WithRound(b.RoundTables(dict.UnionTwPhrases), b.UnionFor(dict.UnionTwPhrases)).
			WithRound(b.RoundTables(dict.UnionTwVariants), b.UnionFor(dict.UnionTwVariants))
	case S2Hk:
		return NewDictRefs(b.RoundTables(dict.UnionS2T), b.UnionFor(dict.UnionS2T)).
			WithRound(b.RoundTables(dict.UnionHkVariants), b.UnionFor(dict.UnionHkVariants))
	case T2S:
		return NewDictRefs(b.RoundTables(dict.UnionT2S), b.UnionFor(dict.UnionT2S))
	case T2Tw:
		return NewDictRefs(b.RoundTables(dict.UnionTwVariants), b.UnionFor(dict.UnionTwVariants))
	case T2Twp:
		return NewDictRefs(b.RoundTables(dict.UnionTwPhrases), b.UnionFor(dict.UnionTwPhrases)).
			WithRound(b.RoundTables(dict.UnionTwVariants), b.UnionFor(dict.UnionTwVariants))
	case T2Hk:
		return NewDictRefs(b.RoundTables(dict.UnionHkVariants), b.UnionFor(dict.UnionHkVariants))
	case Tw2S:
		return NewDictRefs(b.RoundTables(dict.UnionTwRevPair), b.UnionFor(dict.UnionTwRevPair)).
			WithRound(b.RoundTables(dict.UnionT2S), b.UnionFor(dict.UnionT2S))
	case Tw2Sp:
		return NewDictRefs(b.RoundTables(dict.UnionTwRevTriple), b.UnionFor(dict.UnionTwRevTriple)).
			WithRound(b.RoundTables(dict.UnionT2S), b.UnionFor(dict.UnionT2S))
	case Tw2T:
		return NewDictRefs(b.RoundTables(dict.UnionTwRevPair), b.UnionFor(dict.UnionTwRevPair))
	case Tw2Tp:
		return NewDictRefs(b.RoundTables(dict.UnionTwRevPair), b.UnionFor(dict.UnionTwRevPair)).
			WithRound(b.RoundTables(dict.UnionTwPhrasesRev), b.UnionFor(dict.UnionTwPhrasesRev))
	case Hk2S:
		return NewDictRefs(b.RoundTables(dict.UnionHkRevPair), b.UnionFor(dict.UnionHkRevPair)).
			WithRound(b.RoundTables(dict.UnionT2S), b.UnionFor(dict.UnionT2S))
	case Hk2T:
		return NewDictRefs(b.RoundTables(dict.UnionHkRevPair), b.UnionFor(dict.UnionHkRevPair))
	case Jp2T:
		return NewDictRefs(b.RoundTables(dict.UnionJpRevTriple), b.UnionFor(dict.UnionJpRevTriple))
	case T2Jp:
		return NewDictRefs(b.RoundTables(dict.UnionJpVariants), b.UnionFor(dict.UnionJpVariants))
	}
	return nil
}

// Convert translates input under the named config ("s2t", "tw2sp", ...,
// case-insensitive). An unknown config is not fatal: the returned string
// is "Invalid config: <name>" and the same text is recorded in the error
// slot. punct additionally substitutes paired punctuation on the configs
// that cross the Simplified/Traditional boundary.
func (cc *OpenCC) Convert(input, config string, punct bool) string {
	c, ok := ParseConfig(config)
	if !ok {
		msg := fmt.Sprintf("Invalid config: %s", config)
		cc.setLastError(msg)
		return msg
	}
	return cc.convert(input, c, punct)
}

// ConvertByID translates input under a numeric config id (1..=16). The
// invalid-id behavior matches Convert.
func (cc *OpenCC) ConvertByID(input string, id int, punct bool) string {
	c := Config(id)
	if !c.Valid() {
		msg := fmt.Sprintf("Invalid config: %d", id)
		cc.setLastError(msg)
		return msg
	}
	return cc.convert(input, c, punct)
}

func (cc *OpenCC) convert(input string, c Config, punct bool) string {
	out := cc.program(c).ApplySegmentReplace(input, cc.segmentReplace)
	if punct && c.punctAware() {
		out = convertPunctuation(out, c.toTraditional())
	}
	cc.ClearLastError()
	return out
}

// st converts input character-by-character with STCharacters only; ts is
// the TSCharacters counterpart. Both are minimal passes used by ZhoCheck.
func (cc *OpenCC) st(input string) string {
	return convertPlain(input, []*dict.DictMaxLen{cc.dicts.STCharacters}, 1)
}

func (cc *OpenCC) ts(input string) string {
	return convertPlain(input, []*dict.DictMaxLen{cc.dicts.TSCharacters}, 1)
}

// zhoStripRe removes ASCII noise (and the shared character 著) before
// script detection, so mixed text does not mask the verdict.
var zhoStripRe = regexp.MustCompile("[!-/:-@\\[-`{-~\t\n\v\f\r 0-9A-Za-z_著]")

// ZhoCheck reports the likely script of input by examining a bounded
// prefix: 1 for Traditional, 2 for Simplified, 0 for neither (or empty
// input). Only the first ~1,000 bytes are considered.
func (cc *OpenCC) ZhoCheck(input string) int {
	if input == "" {
		return 0
	}
	checkLen := FindMaxUTF8Length(input, 1000)
	stripped := zhoStripRe.ReplaceAllString(input[:checkLen], "")
	stripped = stripped[:FindMaxUTF8Length(stripped, 200)]

	switch {
	case stripped != cc.ts(stripped):
		return 1
	case stripped != cc.st(stripped):
		return 2
	default:
		return 0
	}
}
