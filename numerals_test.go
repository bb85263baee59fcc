package clockface

import (
	"strconv"
	"testing"

	"golang.org/x/text/language"
)

func TestNumeralsEnglish(t *testing.T) {
	got := Numerals(language.English)
	for i, s := range got {
		if want := strconv.Itoa(i + 1); s != want {
			t.Errorf("Numerals(en)[%d] = %q, want %q", i, s, want)
		}
	}
}

func TestNumeralsNonEmpty(t *testing.T) {
	for _, tag := range []language.Tag{language.German, language.Japanese, language.Arabic} {
		for i, s := range Numerals(tag) {
			if s == "" {
				t.Errorf("Numerals(%v)[%d] is empty", tag, i)
			}
		}
	}
}
