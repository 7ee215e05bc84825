package opencc

import (
	"runtime"
	"strings"
	"sync"

	"github.com/laisuk/opencc-fmmseg/dict"
)

// parallelThreshold is the input size, in characters, up to which the
// segment driver always runs sequentially.
const parallelThreshold = 1000

// chunkTargetChars is the number of characters one parallel chunk aims
// to carry.
const chunkTargetChars = 1024

// span is a half-open character range of the input. Delimiter spans are
// emitted verbatim; content spans go through the match loop.
type span struct {
	lo, hi    int
	delimiter bool
}

// splitSpans cuts the character range [0, n) of text into alternating
// content and delimiter spans. Every delimiter character becomes its own
// single-character span, so chunk cuts between spans can never break a
// dictionary match.
func splitSpans(text string, offs []int, n int) []span {
	spans := make([]span, 0, n/8+1)
	start := 0
	for i := 0; i < n; i++ {
		c := rune(text[offs[i]])
		if c >= 0x80 {
			c = decodeRuneAt(text, offs[i])
		}
		if isDelimiter(c) {
			if i > start {
				spans = append(spans, span{lo: start, hi: i})
			}
			spans = append(spans, span{lo: i, hi: i + 1, delimiter: true})
			start = i + 1
		}
	}
	if start < n {
		spans = append(spans, span{lo: start, hi: n})
	}
	return spans
}

// convertSpans runs the match loop over a run of spans, writing into out.
func convertSpans(text string, offs []int, spans []span,
	dicts []*dict.DictMaxLen, maxLen int, union *dict.StarterUnion,
	out *strings.Builder) {
	for _, sp := range spans {
		if sp.delimiter {
			out.WriteString(text[offs[sp.lo]:offs[sp.hi]])
			continue
		}
		convertSpan(text, offs, sp.lo, sp.hi, dicts, maxLen, union, out)
	}
}

// segmentReplace splits text at delimiters and converts every content
// span with forward maximum matching. When parallel is set and the input
// is large enough, contiguous runs of spans are converted on separate
// goroutines and concatenated in order; the result is byte-identical to
// the sequential path because the split points depend only on content.
func segmentReplace(text string, dicts []*dict.DictMaxLen, maxLen int,
	union *dict.StarterUnion, parallel bool) string {
	if text == "" {
		return ""
	}
	offs := runeOffsets(text)
	n := len(offs) - 1
	spans := splitSpans(text, offs, n)

	if !parallel || n <= parallelThreshold {
		var out strings.Builder
		out.Grow(len(text) + len(text)/10)
		convertSpans(text, offs, spans, dicts, maxLen, union, &out)
		return out.String()
	}

	chunks := chunkSpans(spans, n)
	results := make([]string, len(chunks))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []span) {
			defer wg.Done()
			var out strings.Builder
			byteLen := offs[chunk[len(chunk)-1].hi] - offs[chunk[0].lo]
			out.Grow(byteLen + byteLen/10)
			convertSpans(text, offs, chunk, dicts, maxLen, union, &out)
			results[i] = out.String()
		}(i, chunk)
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	var out strings.Builder
	out.Grow(total)
	for _, r := range results {
		out.WriteString(r)
	}
	return out.String()
}

// chunkSpans groups spans into contiguous chunks sized for the available
// parallelism: about min(cores*4, chars/chunkTargetChars) chunks, never
// splitting a span.
func chunkSpans(spans []span, totalChars int) [][]span {
	target := runtime.NumCPU() * 4
	if byChars := totalChars / chunkTargetChars; byChars < target {
		target = byChars
	}
	if target < 1 {
		target = 1
	}
	perChunk := totalChars/target + 1

	chunks := make([][]span, 0, target)
	start := 0
	chars := 0
	for i, sp := range spans {
		chars += sp.hi - sp.lo
		if chars >= perChunk && i+1 < len(spans) {
			chunks = append(chunks, spans[start:i+1])
			start = i + 1
			chars = 0
		}
	}
	if start < len(spans) {
		chunks = append(chunks, spans[start:])
	}
	return chunks
}
