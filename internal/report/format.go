package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var (
	passMark = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
	heading  = color.New(color.Bold).SprintFunc()
)

const ruleWidth = 60

func rule() string {
	return strings.Repeat("=", ruleWidth)
}

// decimal panics on NaN and infinities, so those are printed as-is
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonFinite(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Currency renders a dollar amount rounded to cents with thousands
// separators, e.g. $15,000.00
func Currency(amount float64) string {
	if !isFinite(amount) {
		return "$" + nonFinite(amount)
	}
	rounded := decimal.NewFromFloat(amount).Round(2)
	return "$" + printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// WholeCurrency drops the cents, e.g. $15,000
func WholeCurrency(amount float64) string {
	if !isFinite(amount) {
		return "$" + nonFinite(amount)
	}
	rounded := decimal.NewFromFloat(amount).Round(0)
	return "$" + printer.Sprintf("%d", rounded.IntPart())
}

// Percent renders a fraction as a percentage with a fixed number of
// decimal places: Percent(0.041, 1) == "4.1%"
func Percent(fraction float64, places int32) string {
	if !isFinite(fraction) {
		return nonFinite(fraction) + "%"
	}
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}

func statusIcon(ok bool) string {
	if ok {
		return passMark("✅")
	}
	return failMark("❌")
}

func decimalString(v float64, places int32) string {
	if !isFinite(v) {
		return nonFinite(v)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
