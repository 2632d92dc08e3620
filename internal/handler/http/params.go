package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// monthYearParams reads the ?month=&year= query pair. Month is 0-indexed
// (0 = January); both default to the current month when absent.
func monthYearParams(r *http.Request) (year, month0 int, err error) {
	now := time.Now()
	year = now.Year()
	month0 = int(now.Month()) - 1

	if v := r.URL.Query().Get("year"); v != "" {
		year, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year: %w", err)
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		month0, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid month: %w", err)
		}
	}
	return year, month0, nil
}

// dateParam reads the ?date= query value, defaulting to today.
func dateParam(r *http.Request) string {
	if v := r.URL.Query().Get("date"); v != "" {
		return v
	}
	return time.Now().Format("2006-01-02")
}
