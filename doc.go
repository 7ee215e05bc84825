/*
Package opencc converts text between Simplified, Traditional (general,
Taiwan, Hong Kong) and Japanese Shinjitai Chinese using the OpenCC
lexicons.

The converter splits input at delimiter characters and runs forward
maximum matching (FMM) over each non-delimiter span: at every position the
longest dictionary phrase wins, probed longest-first with per-starter
length masks pruning impossible candidate lengths before any map lookup.
A conversion config selects one to three rounds of dictionaries; the
output of each round feeds the next.

	bundle, err := dict.LoadCompressed("dicts.zst")
	if err != nil { ... }
	cc := opencc.New(bundle)
	out := cc.Convert("汉字转换测试", "s2t", false) // 漢字轉換測試

Large inputs are chunked at delimiter boundaries and converted on all
CPUs; the output is byte-identical to the sequential result.
*/
package opencc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'opencc'
func tracer() tracing.Trace {
	return tracing.Select("opencc")
}
