package pasteparser_test

import (
	"testing"

	"github.com/jaittola/pasteparser"
)

func FuzzParse(f *testing.F) {
	f.Add("2 + 3i")
	f.Add("-1 3/4")
	f.Add("2 ∠ 32°")
	f.Add("[1  2\n3  2.4E-2]")
	f.Add("123.456 + 999.2iasdf")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := pasteparser.ParseString(s)
		if (r == nil) == (err == nil) {
			t.Errorf("%q: result %v with error %v", s, r, err)
		}
	})
}
