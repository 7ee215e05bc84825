package opencc

import "testing"

func TestFindMaxUTF8Length(t *testing.T) {
	input := "汉字转换测试" // three bytes per character
	if got := FindMaxUTF8Length(input, 100); got != len(input) {
		t.Fatalf("short input should be returned whole, got %d", got)
	}
	if got := FindMaxUTF8Length(input, 7); got != 6 {
		t.Fatalf("boundary should back up to 6, got %d", got)
	}
	if got := FindMaxUTF8Length(input, 6); got != 6 {
		t.Fatalf("exact boundary should stay at 6, got %d", got)
	}
	if got := FindMaxUTF8Length("abc", 2); got != 2 {
		t.Fatalf("ASCII truncation should be exact, got %d", got)
	}
}

func TestFormatThousand(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567890, "1,234,567,890"},
		{-1234, "-1,234"},
	}
	for _, c := range cases {
		if got := FormatThousand(c.in); got != c.want {
			t.Fatalf("FormatThousand(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
