package region

import (
	"errors"
	"fmt"
)

// Named regions accepted by Resolve.
const (
	American = "american"
	African  = "african"
	All      = "all"
)

// ErrInvalidRegion is returned for region names outside the known tables.
var ErrInvalidRegion = errors.New("invalid region")

// Region tables are process-wide static configuration. Order matters: the
// aggregator queries countries in table order and only the first few, so the
// lists lead with the countries that carry the most stations upstream.
var (
	americanCountries = []string{
		"United States", "Canada", "Mexico", "Brazil", "Argentina", "Chile",
	}
	africanCountries = []string{
		"South Africa", "Nigeria", "Kenya", "Ghana", "Egypt",
		"Morocco", "Ethiopia", "Tanzania", "Uganda", "Zimbabwe",
	}
)

// Resolve maps a region name to its ordered country list. "all" concatenates
// the American and African tables, American first. The returned slice is a
// copy and safe for the caller to truncate.
func Resolve(name string) ([]string, error) {
	switch name {
	case American:
		return append([]string(nil), americanCountries...), nil
	case African:
		return append([]string(nil), africanCountries...), nil
	case All:
		countries := make([]string, 0, len(americanCountries)+len(africanCountries))
		countries = append(countries, americanCountries...)
		countries = append(countries, africanCountries...)
		return countries, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRegion, name)
	}
}

// Tables returns copies of the named region tables, keyed by region name.
func Tables() map[string][]string {
	return map[string][]string{
		American: append([]string(nil), americanCountries...),
		African:  append([]string(nil), africanCountries...),
	}
}
