package commands

import (
	"time"

	"surplusfood-api/internal/pkg/errs"
)

var errInvalidTimeFormat = errs.New("time must be RFC 3339")

func parseDraftTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errs.Mark(err, errInvalidTimeFormat)
	}
	return t, nil
}
