package report

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseableDate indicates none of the parse strategies matched.
// Date failures never abort a report; renderers substitute DatePlaceholder.
var ErrUnparseableDate = errors.New("unparseable date")

// DatePlaceholder is rendered wherever a date string is missing or
// cannot be parsed.
const DatePlaceholder = "unknown date"

// The dataset writes dates day-first: "16/12/2019 10:46:00".
var (
	dayFirstDateTime = regexp.MustCompile(`^\s*(\d{1,2})/(\d{1,2})/(\d{4})[ T](\d{1,2}):(\d{1,2}):(\d{1,2})\s*$`)
	dayFirstDate     = regexp.MustCompile(`^\s*(\d{1,2})/(\d{1,2})/(\d{4})\s*$`)
)

// genericLayouts are tried, in order, when the day-first patterns do not
// match. There is no locale-aware generic parser in the standard library;
// this list covers the formats seen in the wild in these datasets.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"1/2/2006",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// ParseDate interprets a raw dataset date string as an instant.
//
// Strategies, in order: day-first date-time, day-first date-only,
// a generic layout sweep, and finally the generic sweep again with the
// first two slash groups swapped (recovers strings a month-first writer
// produced). Components are passed to time.Date positionally without
// range checks, so out-of-range values normalize the way time.Date
// normalizes them (month 13 rolls into January of the next year).
func ParseDate(s string) (time.Time, error) {
	if m := dayFirstDateTime.FindStringSubmatch(s); m != nil {
		return dateFromParts(m[3], m[2], m[1], m[4], m[5], m[6]), nil
	}
	if m := dayFirstDate.FindStringSubmatch(s); m != nil {
		return dateFromParts(m[3], m[2], m[1], "0", "0", "0"), nil
	}

	trimmed := strings.TrimSpace(s)
	if t, ok := parseGeneric(trimmed); ok {
		return t, nil
	}
	if swapped, ok := swapDayMonth(trimmed); ok {
		if t, ok := parseGeneric(swapped); ok {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
}

// dateFromParts builds an instant from decimal component strings already
// matched by regex, so Atoi cannot fail.
func dateFromParts(year, month, day, hour, minute, sec string) time.Time {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	h, _ := strconv.Atoi(hour)
	mi, _ := strconv.Atoi(minute)
	se, _ := strconv.Atoi(sec)
	return time.Date(y, time.Month(mo), d, h, mi, se, 0, time.UTC)
}

func parseGeneric(s string) (time.Time, bool) {
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// swapDayMonth exchanges the first two slash-delimited numeric groups.
// Returns false when the string does not start with two such groups.
func swapDayMonth(s string) (string, bool) {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 3 {
		return "", false
	}
	for _, p := range parts[:2] {
		if p == "" {
			return "", false
		}
		if _, err := strconv.Atoi(p); err != nil {
			return "", false
		}
	}
	return parts[1] + "/" + parts[0] + "/" + parts[2], true
}

// FormatLong renders an instant as "16th December 2019 10:46 AM".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("%s %s", FormatShort(t), t.Format("3:04 PM"))
}

// FormatShort renders an instant as "16th December 2019".
func FormatShort(t time.Time) string {
	return fmt.Sprintf("%d%s %s %d", t.Day(), ordinalSuffix(t.Day()), t.Month().String(), t.Year())
}

// LongDate parses a raw dataset date and renders it in long form,
// degrading to the placeholder on empty or unparseable input.
func LongDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return DatePlaceholder
	}
	t, err := ParseDate(raw)
	if err != nil {
		return DatePlaceholder
	}
	return FormatLong(t)
}

// ShortDate is LongDate without the time of day.
func ShortDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return DatePlaceholder
	}
	t, err := ParseDate(raw)
	if err != nil {
		return DatePlaceholder
	}
	return FormatShort(t)
}

// ordinalSuffix returns the English ordinal suffix for a day of month.
func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
