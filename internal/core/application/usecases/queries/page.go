// Package queries contains read-side operations. Handlers query the database
// through GORM directly and return flat response structs shaped for the API.
package queries

import (
	"strconv"
	"strings"
)

const (
	DefaultTake = 10
	MaxTake     = 100
)

// Page is a take/skip window over a sorted result set.
type Page struct {
	Take int
	Skip int
}

// DefaultPage returns the first DefaultTake records.
func DefaultPage() Page {
	return Page{Take: DefaultTake}
}

// ParsePage builds a Page from raw query parameters. Missing, non-numeric
// or out-of-range values fall back to the defaults; take is capped at MaxTake.
func ParsePage(take, skip string) Page {
	p := DefaultPage()

	if n, err := strconv.Atoi(strings.TrimSpace(take)); err == nil && n > 0 {
		p.Take = min(n, MaxTake)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(skip)); err == nil && n >= 0 {
		p.Skip = n
	}

	return p
}

// likePattern turns user input into an ILIKE substring pattern with the
// wildcard characters escaped.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
