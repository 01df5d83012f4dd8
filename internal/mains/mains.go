// Package mains picks the local electrical mains frequency so the render
// stage can centre its hum notch filter on the right fundamental. The
// frequency is inferred from the system timezone: wrong guesses cost nothing
// worse than a notch at an empty frequency.
package mains

import (
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// HumFrequency returns the local mains frequency in Hz (50 or 60), falling
// back to 50Hz (the more common grid worldwide) when detection fails.
func HumFrequency() int {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return 50
	}
	return HumFrequencyForTimezone(timezone)
}

// HumFrequencyForTimezone resolves the mains frequency for an IANA timezone.
// Split out so tests can exercise specific zones.
func HumFrequencyForTimezone(timezone string) int {
	// UTC/GMT carry no country association.
	if timezone == "UTC" || timezone == "GMT" || strings.HasPrefix(timezone, "Etc/") {
		return 50
	}

	tzMap, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return 50
	}
	country, err := tzMap.GetCountry(timezone)
	if err != nil {
		return 50
	}

	// Japan runs both grids split by region; Tokyo's 50Hz side is the
	// most populous, so that is the default.
	if country == "Japan" {
		return 50
	}
	if hz60Grids[country] {
		return 60
	}
	return 50
}

// hz60Grids lists countries on 60Hz mains; everywhere else uses 50Hz.
// Source: https://en.wikipedia.org/wiki/Mains_electricity_by_country
var hz60Grids = map[string]bool{
	// North and Central America
	"United States": true,
	"Canada":        true,
	"Mexico":        true,
	"Belize":        true,
	"Costa Rica":    true,
	"El Salvador":   true,
	"Guatemala":     true,
	"Honduras":      true,
	"Nicaragua":     true,
	"Panama":        true,

	// Caribbean
	"Bahamas":             true,
	"Barbados":            true,
	"Cayman Islands":      true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"U.S. Virgin Islands": true,

	// South America (most of the continent is 50Hz)
	"Brazil":    true, // both grids exist; 60Hz predominant
	"Colombia":  true,
	"Ecuador":   true,
	"Guyana":    true,
	"Peru":      true,
	"Suriname":  true,
	"Venezuela": true,

	// Asia and Pacific
	"South Korea":      true,
	"Taiwan":           true,
	"Philippines":      true,
	"Saudi Arabia":     true,
	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
