package opencc

import (
	"strings"
	"testing"

	"github.com/laisuk/opencc-fmmseg/dict"
)

// testConverter builds a converter over a small in-memory bundle that
// covers the scenarios below. The shipped lexicons are generated data and
// are not part of the repository.
func testConverter() *OpenCC {
	b := dict.NewBundle()
	b.STCharacters = dict.FromPairs([]dict.Pair{
		{Key: "汉", Value: "漢"}, {Key: "转", Value: "轉"}, {Key: "换", Value: "換"}, {Key: "测", Value: "測"}, {Key: "试", Value: "試"},
		{Key: "这", Value: "這"}, {Key: "简", Value: "簡"}, {Key: "体", Value: "體"}, {Key: "个", Value: "個"},
		{Key: "邻", Value: "鄰"}, {Key: "国", Value: "國"}, {Key: "兰", Value: "蘭"}, {Key: "罗", Value: "羅"}, {Key: "宫", Value: "宮"},
		{Key: "丽", Value: "麗"}, {Key: "画", Value: "畫"}, {Key: "旷", Value: "曠"}, {Key: "龙", Value: "龍"}, {Key: "马", Value: "馬"},
		{Key: "贵", Value: "貴"}, {Key: "荣", Value: "榮"}, {Key: "华", Value: "華"},
	})
	b.STPhrases = dict.FromPairs([]dict.Pair{
		{Key: "罗浮宫里", Value: "羅浮宮裡"},
		{Key: "龙马精神", Value: "龍馬精神"},
	})
	b.TSCharacters = dict.FromPairs([]dict.Pair{
		{Key: "漢", Value: "汉"}, {Key: "轉", Value: "转"}, {Key: "換", Value: "换"}, {Key: "測", Value: "测"}, {Key: "試", Value: "试"},
		{Key: "這", Value: "这"}, {Key: "簡", Value: "简"}, {Key: "體", Value: "体"}, {Key: "個", Value: "个"},
		{Key: "龍", Value: "龙"}, {Key: "馬", Value: "马"}, {Key: "繁", Value: "繁"},
	})
	b.TSPhrases = dict.FromPairs([]dict.Pair{
		{Key: "龍馬精神", Value: "龙马精神"},
	})
	b.TWPhrases = dict.FromPairs([]dict.Pair{
		{Key: "意大利", Value: "義大利"},
	})
	b.TWPhrasesRev = dict.FromPairs([]dict.Pair{
		{Key: "義大利", Value: "意大利"},
	})
	b.TWVariants = dict.FromPairs([]dict.Pair{
		{Key: "裡", Value: "裡"},
	})
	return New(b)
}

func TestConvertS2T(t *testing.T) {
	cc := testConverter()
	if got := cc.Convert("汉字转换测试", "s2t", false); got != "漢字轉換測試" {
		t.Fatalf("s2t: got %q", got)
	}
}

func TestConvertT2S(t *testing.T) {
	cc := testConverter()
	if got := cc.Convert("這是一個測試", "t2s", false); got != "这是一个测试" {
		t.Fatalf("t2s: got %q", got)
	}
}

func TestConvertS2TwpPunct(t *testing.T) {
	cc := testConverter()
	input := "意大利邻国法兰西罗浮宫里收藏的“蒙娜丽莎的微笑”画像是旷世之作。"
	want := "義大利鄰國法蘭西羅浮宮裡收藏的「蒙娜麗莎的微笑」畫像是曠世之作。"
	if got := cc.Convert(input, "s2twp", true); got != want {
		t.Fatalf("s2twp: got %q, want %q", got, want)
	}
}

func TestConvertNonChinese(t *testing.T) {
	cc := testConverter()
	if got := cc.Convert("Hello, world!", "s2t", false); got != "Hello, world!" {
		t.Fatalf("non-Chinese text must pass through, got %q", got)
	}
}

func TestConvertEmpty(t *testing.T) {
	cc := testConverter()
	if got := cc.Convert("", "s2t", false); got != "" {
		t.Fatalf("empty input must stay empty, got %q", got)
	}
}

func TestConvertInvalidConfig(t *testing.T) {
	cc := testConverter()
	got := cc.Convert("汉字", "xyz", false)
	if got != "Invalid config: xyz" {
		t.Fatalf("invalid config result wrong: %q", got)
	}
	if cc.LastError() != "Invalid config: xyz" {
		t.Fatalf("last error not recorded: %q", cc.LastError())
	}

	// the next successful conversion clears the slot
	cc.Convert("汉字", "s2t", false)
	if cc.LastError() != "No error" {
		t.Fatalf("last error not cleared: %q", cc.LastError())
	}
}

func TestConvertByID(t *testing.T) {
	cc := testConverter()
	if got := cc.ConvertByID("汉字转换测试", 1, false); got != "漢字轉換測試" {
		t.Fatalf("id 1: got %q", got)
	}
	if got := cc.ConvertByID("汉字", 17, false); got != "Invalid config: 17" {
		t.Fatalf("id 17: got %q", got)
	}
	if got := cc.ConvertByID("汉字", 0, false); got != "Invalid config: 0" {
		t.Fatalf("id 0: got %q", got)
	}
}

func TestDelimiterTransparency(t *testing.T) {
	cc := testConverter()
	a, b := "龙马精神", "汉字转换测试"
	for _, delim := range []string{" ", ",", "。", "！", "\n"} {
		joint := cc.Convert(a+delim+b, "s2t", false)
		split := cc.Convert(a, "s2t", false) + delim + cc.Convert(b, "s2t", false)
		if joint != split {
			t.Fatalf("delimiter %q breaks transparency: %q vs %q", delim, joint, split)
		}
	}
}

func TestParallelDeterminism(t *testing.T) {
	cc := testConverter()
	input := strings.Repeat("龙马精神，汉字转换测试。Hello! ", 300)

	cc.SetParallel(true)
	par := cc.Convert(input, "s2t", false)
	cc.SetParallel(false)
	seq := cc.Convert(input, "s2t", false)
	if par != seq {
		t.Fatalf("parallel output diverges from sequential output")
	}
}

func TestIdempotence(t *testing.T) {
	cc := testConverter()
	once := cc.Convert("汉字转换测试", "s2t", false)
	twice := cc.Convert(once, "s2t", false)
	if once != twice {
		t.Fatalf("s2t must be idempotent on unambiguous text: %q vs %q", once, twice)
	}
}

func TestRoundTrip(t *testing.T) {
	cc := testConverter()
	input := "汉字转换测试"
	back := cc.Convert(cc.Convert(input, "s2t", false), "t2s", false)
	if back != input {
		t.Fatalf("t2s(s2t(x)) != x: got %q", back)
	}
}

func TestConfigMethods(t *testing.T) {
	cc := testConverter()
	if got := cc.S2T("汉字转换测试", false); got != "漢字轉換測試" {
		t.Fatalf("S2T: got %q", got)
	}
	if got := cc.T2S("這是一個測試", false); got != "这是一个测试" {
		t.Fatalf("T2S: got %q", got)
	}
	if got := cc.S2Twp("意大利", false); got != "義大利" {
		t.Fatalf("S2Twp: got %q", got)
	}
	if got := cc.Tw2Tp("義大利"); got != "意大利" {
		t.Fatalf("Tw2Tp: got %q", got)
	}
}

func TestSetParallel(t *testing.T) {
	cc := testConverter()
	if !cc.GetParallel() {
		t.Fatalf("parallel should default to true")
	}
	cc.SetParallel(false)
	if cc.GetParallel() {
		t.Fatalf("SetParallel(false) did not stick")
	}
}

func TestZhoCheck(t *testing.T) {
	cc := testConverter()
	cases := []struct {
		input string
		want  int
	}{
		{"这是简体", 2},
		{"這是繁體", 1},
		{"Hello", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := cc.ZhoCheck(c.input); got != c.want {
			t.Fatalf("ZhoCheck(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}
