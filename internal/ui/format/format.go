// Package format renders numbers for display with English digit grouping.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Int renders v rounded to a whole number with thousands separators.
func Int(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Decimal renders v with the given number of decimals and separators.
func Decimal(v float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// Tons renders a quantity given in thousand tons as whole tons.
func Tons(thousands float64) string {
	return Int(thousands*1000) + " t"
}

// Millions renders a count given in millions, e.g. "4.2M".
func Millions(v float64) string {
	return Decimal(v, 1) + "M"
}

// USD renders a dollar amount with separators, e.g. "$8,000".
func USD(v float64) string {
	return "$" + Int(v)
}

// Percent renders a fraction (0.068) as a percentage ("6.8%").
func Percent(fraction float64) string {
	return Decimal(fraction*100, 1) + "%"
}
