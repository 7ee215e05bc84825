/*
Package dict builds and stores the OpenCC lexicon tables used by the
conversion engine.

A DictMaxLen is one lexicon: a phrase map plus global and per-starter
length masks that let the matcher reject impossible (starter, length)
combinations without hashing a candidate substring. A Bundle owns the
sixteen standard tables, loads them from a Zstd-compressed CBOR blob or
from a directory of OpenCC .txt files, and caches the per-round
StarterUnion aggregations the converter asks for.

Most consumers will not touch this package directly; the opencc root
package wires it up.
*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'opencc.dict'
func tracer() tracing.Trace {
	return tracing.Select("opencc.dict")
}
