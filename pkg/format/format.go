package format

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var isoCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// DateLevel selects a date verbosity. Short and medium both use the
// abbreviated month; long spells it out.
type DateLevel string

const (
	DateShort  DateLevel = "short"
	DateMedium DateLevel = "medium"
	DateLong   DateLevel = "long"
)

// Currency renders a monetary amount. A value of exactly three uppercase
// letters is treated as an ISO 4217 code and formatted locale-aware;
// anything else is a literal prefix in front of a 2-decimal amount.
func Currency(amount float64, cur string) string {
	code := strings.TrimSpace(cur)
	if code == "" {
		code = "$"
	}
	if isoCodePattern.MatchString(code) {
		if unit, err := currency.ParseISO(code); err == nil {
			p := message.NewPrinter(language.English)
			return p.Sprintf("%v%.2f", currency.NarrowSymbol(unit), amount)
		}
		// Unknown ISO-looking code: fall through to the literal prefix.
	}
	return code + fixed(amount)
}

// Date formats an ISO "2006-01-02" date string at the given verbosity.
// Unparseable input is returned verbatim so a half-typed date never
// breaks a render.
func Date(value string, level DateLevel) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	switch level {
	case DateLong:
		return parsed.Format("January 2, 2006")
	default:
		return parsed.Format("Jan 2, 2006")
	}
}

func fixed(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
