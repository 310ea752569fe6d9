package format

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// dateLayouts maps a locale (or its base language) to a short date layout.
var dateLayouts = map[string]string{
	"en-US": "1/2/2006",
	"en":    "02/01/2006",
	"de":    "2.1.2006",
	"pt":    "02/01/2006",
	"fr":    "02/01/2006",
	"es":    "2/1/2006",
}

const fallbackLayout = "2006-01-02"

// DaysBetween returns the whole number of days between a and b, rounded.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(math.Abs(float64(a.Sub(b)) / float64(day))))
}

// MovementDate renders a movement timestamp relative to now.
func MovementDate(date, now time.Time, locale string) string {
	switch days := DaysBetween(now, date); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	}
	return Date(date, locale)
}

// Date renders t with the locale's short date layout.
func Date(t time.Time, locale string) string {
	return t.Format(layout(locale))
}

// DateTime renders the login banner date and time.
func DateTime(t time.Time, locale string) string {
	return t.Format(layout(locale) + ", 15:04")
}

func layout(locale string) string {
	tag := Tag(locale)
	if l, ok := dateLayouts[tag.String()]; ok {
		return l
	}
	base, _ := tag.Base()
	if l, ok := dateLayouts[base.String()]; ok {
		return l
	}
	return fallbackLayout
}

// Clock renders remaining seconds as mm:ss.
func Clock(remaining int) string {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}
