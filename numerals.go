package clockface

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Numerals returns the hour labels "1".."12" formatted for tag. Index 0 is
// the label for 1 o'clock and index 11 the label for 12 o'clock.
func Numerals(tag language.Tag) [12]string {
	p := message.NewPrinter(tag)
	var out [12]string
	for i := range out {
		out[i] = p.Sprint(number.Decimal(i + 1))
	}
	return out
}

// asciiNumeral is the fallback label when a face lacks localized digits.
func asciiNumeral(hour int) string {
	return strconv.Itoa(hour)
}
