package opencc_test

import (
	"fmt"

	opencc "github.com/laisuk/opencc-fmmseg"
	"github.com/laisuk/opencc-fmmseg/dict"
)

// The examples run against a tiny in-memory bundle; applications load the
// precompiled blob instead (see NewFromBlob and cmd/dictgen).
func exampleBundle() *dict.Bundle {
	b := dict.NewBundle()
	b.STCharacters = dict.FromPairs([]dict.Pair{
		{Key: "汉", Value: "漢"}, {Key: "转", Value: "轉"}, {Key: "换", Value: "換"}, {Key: "测", Value: "測"}, {Key: "试", Value: "試"},
	})
	b.STPhrases = dict.FromPairs([]dict.Pair{
		{Key: "转换", Value: "轉換"},
	})
	return b
}

func ExampleOpenCC_Convert() {
	cc := opencc.New(exampleBundle())
	fmt.Println(cc.Convert("汉字转换测试", "s2t", false))
	// Output: 漢字轉換測試
}

func ExampleOpenCC_Convert_invalidConfig() {
	cc := opencc.New(exampleBundle())
	fmt.Println(cc.Convert("汉字", "xyz", false))
	fmt.Println(cc.LastError())
	// Output:
	// Invalid config: xyz
	// Invalid config: xyz
}

func ExampleParseConfig() {
	c, ok := opencc.ParseConfig("S2TWP")
	fmt.Println(int(c), c, ok)
	// Output: 3 s2twp true
}
