package platform

import (
	"fmt"
	"time"

	"github.com/aretw0/unmangle/pkg/core"
	"github.com/pkg/errors"
)

// TimestampLayout renders everything after the year, e.g. "-01-01 00:00:00 UTC".
const TimestampLayout = "-01-02 15:04:05 MST"

// Calendar years the exporter's date library can represent.
const (
	MinYear = -262143
	MaxYear = 262142
)

var (
	minTimestamp = time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxTimestamp = time.Date(MaxYear, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// FormatTimestamp converts Unix seconds to a calendar date in UTC, e.g.
// "1970-01-01 00:00:00 UTC". Years outside 0000-9999 carry an explicit sign
// and at least four digits: "+10000-01-01 ..." or "-0001-12-31 ...".
func FormatTimestamp(sec int64) (string, error) {
	if sec < minTimestamp || sec > maxTimestamp {
		return "", errors.Wrapf(core.ErrTimestampRange, "%d", sec)
	}
	t := time.Unix(sec, 0).UTC()
	return formatYear(t.Year()) + t.Format(TimestampLayout), nil
}

func formatYear(year int) string {
	if year >= 0 && year <= 9999 {
		return fmt.Sprintf("%04d", year)
	}
	return fmt.Sprintf("%+05d", year)
}
