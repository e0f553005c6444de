// Package timezone holds the application location set by APP_TIMEZONE. Dashboard
// dates such as "today" and a customer's join date are calendar dates in this zone.
package timezone

import (
	"saapadu/config"
	"saapadu/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation *time.Location

func init() {
	name := config.Get().App.Timezone
	if name == constant.Empty {
		log.Warn().Msg("No timezone configured, using UTC")

		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown IANA timezone, using UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// GetLocation returns the application location, UTC if none was loaded.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value in the application location when layout carries no zone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// FormatDate renders the calendar date of t. The zero time renders as "N/A".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return constant.NotAvailable
	}

	return Format(t, constant.DateOnlyFormat)
}

// SameDate reports whether a and b fall on the same calendar date. It compares
// dates, not a 24 hour window.
func SameDate(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}

	ay, am, ad := ToAppTime(a).Date()
	by, bm, bd := ToAppTime(b).Date()

	return ay == by && am == bm && ad == bd
}
