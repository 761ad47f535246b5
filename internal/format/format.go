// Package format holds the display helpers shared by the admin pages.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"TRY": "₺",
	"INR": "₹",
}

// ClassNames joins the non-empty class lists, dropping repeated classes and
// keeping first-seen order.
func ClassNames(classes ...string) string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(classes))
	for _, list := range classes {
		for _, c := range strings.Fields(list) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

// Currency formats amount in major units, e.g. Currency(1234.5, "USD") is
// "$1,234.50". Codes without a known symbol are appended: "1,234.50 CHF".
func Currency(amount float64, code string) string {
	code = strings.ToUpper(code)
	digits := 2
	if code == "JPY" {
		digits = 0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}

	number := printer.Sprintf("%.2f", amount)
	if digits == 0 {
		number = printer.Sprintf("%.0f", amount)
	}
	if symbol, ok := currencySymbols[code]; ok {
		return sign + symbol + number
	}
	return sign + number + " " + code
}

// Number formats n with thousands separators.
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Percent formats a ratio (0.25) as "25.0%".
func Percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func DateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// RelativeTime describes t relative to now ("just now", "5 minutes ago",
// "in 2 days"). Anything beyond 30 days falls back to Date.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}

	var amount int
	var unit string
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		amount, unit = int(d/time.Minute), "minute"
	case d < 24*time.Hour:
		amount, unit = int(d/time.Hour), "hour"
	case d < 30*24*time.Hour:
		amount, unit = int(d/(24*time.Hour)), "day"
	default:
		return Date(t)
	}

	if amount != 1 {
		unit += "s"
	}
	if future {
		return fmt.Sprintf("in %d %s", amount, unit)
	}
	return fmt.Sprintf("%d %s ago", amount, unit)
}

// Head returns the first n characters of s. It cuts on rune boundaries and
// keeps the original bytes, so invalid UTF-8 is passed through unchanged.
func Head(s string, n int) string {
	if n <= 0 {
		return ""
	}

	i := 0
	for count := 0; count < n && i < len(s); count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// Truncate shortens s to at most n characters, ending in an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 1 {
		return Head("…", n)
	}
	return strings.TrimRightFunc(Head(s, n-1), unicode.IsSpace) + "…"
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Initials returns up to two upper-case initials: "Ada Lovelace" is "AL".
func Initials(name string) string {
	initials := make([]rune, 0, 2)
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
