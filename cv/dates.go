package cv

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

const presentLabel = "Present"

var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC3339,
	"01/2006",
	"January 2006",
	"Jan 2006",
}

// ParseDate parses a model date string leniently. The bool result is false
// for empty or malformed values; callers render those as empty strings
// rather than failing the render.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatShortDate renders a model date as a locale-aware short date
// ("Jan 2006" and localized equivalents). Malformed or empty input renders
// as the empty string.
func FormatShortDate(value, locale string) string {
	t, ok := ParseDate(value)
	if !ok {
		return ""
	}
	return monday.Format(t, "Jan 2006", localeFor(locale))
}

// FormatDateRange renders "start – end", using Present for current entries.
// A range with neither endpoint renders empty.
func FormatDateRange(start, end string, current bool, locale string) string {
	from := FormatShortDate(start, locale)
	to := FormatShortDate(end, locale)
	if current {
		to = presentLabel
	}
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	default:
		return from + " – " + to
	}
}

func localeFor(locale string) monday.Locale {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "", "en", "en-us", "en_us":
		return monday.LocaleEnUS
	case "en-gb", "en_gb":
		return monday.LocaleEnGB
	case "fr", "fr-fr", "fr_fr":
		return monday.LocaleFrFR
	case "de", "de-de", "de_de":
		return monday.LocaleDeDE
	case "es", "es-es", "es_es":
		return monday.LocaleEsES
	case "it", "it-it", "it_it":
		return monday.LocaleItIT
	case "pt", "pt-pt", "pt_pt":
		return monday.LocalePtPT
	case "pt-br", "pt_br":
		return monday.LocalePtBR
	case "nl", "nl-nl", "nl_nl":
		return monday.LocaleNlNL
	default:
		return monday.LocaleEnUS
	}
}
