package occupancy

import (
	"fmt"
	"time"
)

var monthNames = map[string][12]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	"fr": {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
}

// MonthLabel renders a short display label such as "Jan 2025". Unknown
// locales fall back to English.
func MonthLabel(t time.Time, locale string) string {
	names, ok := monthNames[locale]
	if !ok {
		names = monthNames["en"]
	}
	return fmt.Sprintf("%s %d", names[t.Month()-1], t.Year())
}
