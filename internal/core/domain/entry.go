package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// EntryDateLayout is the display format of an entry date, e.g. "07 July 2025".
const EntryDateLayout = "02 January 2006"

// DocumentExtension is appended to every storage key.
const DocumentExtension = ".pdf"

// entryDatePattern is two-digit day, alphabetic month name, four-digit year.
var entryDatePattern = regexp.MustCompile(`^(\d{2}) ([A-Za-z]+) (\d{4})$`)

var monthsByName = func() map[string]time.Month {
	m := make(map[string]time.Month, 12)
	for month := time.January; month <= time.December; month++ {
		m[strings.ToLower(month.String())] = month
	}
	return m
}()

// EntryDate is the calendar day a journal entry belongs to.
type EntryDate struct {
	Year  int
	Month time.Month
	Day   int
}

// MatchesEntryDatePattern reports whether s has the "DD MonthName YYYY" shape.
// It does not check that the month name or the day are real.
func MatchesEntryDatePattern(s string) bool {
	return entryDatePattern.MatchString(s)
}

// ParseEntryDate parses a "DD MonthName YYYY" string. The month name is matched
// case-insensitively against the twelve full English month names, and the result
// must be a real calendar date.
func ParseEntryDate(s string) (EntryDate, error) {
	parts := entryDatePattern.FindStringSubmatch(s)
	if parts == nil {
		return EntryDate{}, fmt.Errorf("date %q does not match the pattern DD MonthName YYYY", s)
	}

	day, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[3])
	month, ok := monthsByName[strings.ToLower(parts[2])]
	if !ok {
		return EntryDate{}, fmt.Errorf("unknown month name %q", parts[2])
	}

	// time.Date normalises overflow (31 February -> 3 March), so a round trip
	// exposes days that do not exist in the month.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return EntryDate{}, fmt.Errorf("%s %d does not have a day %d", month, year, day)
	}

	return EntryDate{Year: year, Month: month, Day: day}, nil
}

// EntryDateFromTime returns the entry date of t in t's location.
func EntryDateFromTime(t time.Time) EntryDate {
	return EntryDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight UTC of the date.
func (d EntryDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as "DD MonthName YYYY".
func (d EntryDate) String() string {
	return d.Time().Format(EntryDateLayout)
}

// StorageKey derives the object key "YYYY/MonthName/DD MonthName YYYY.pdf".
// The key depends on nothing but the date, so two entries for the same day
// share a key and the later upload replaces the earlier one.
func (d EntryDate) StorageKey() string {
	return fmt.Sprintf("%04d/%s/%s%s", d.Year, d.Month.String(), d.String(), DocumentExtension)
}
