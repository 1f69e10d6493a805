package render

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats d with exactly two decimals.
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Money formats d in currency with two decimals whatever the currency's
// minor unit, e.g. "$1,050.00" or "¥1,050.00". Unknown currencies fall back
// to Amount.
func Money(d decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return Amount(d)
	}

	formatter := cur.Formatter()
	formatter.Fraction = 2

	return formatter.Format(d.Shift(2).Round(0).IntPart())
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration rounds duration to the second and prints it as "45s",
// "5m10s" or "1h30m".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
