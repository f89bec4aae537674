package util

import "time"

// DateLayout is the calendar-day layout used across requests and reports.
const DateLayout = "2006-01-02"

var wibLocation *time.Location

func init() {
	var err error
	wibLocation, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		wibLocation = time.FixedZone("WIB", 7*60*60)
	}
}

func ToWIB(t time.Time) time.Time {
	return t.In(wibLocation)
}

func FormatWIB(t time.Time, layout string) string {
	return ToWIB(t).Format(layout)
}

func NowWIB() time.Time {
	return time.Now().In(wibLocation)
}

// DayKey returns the WIB calendar day of t.
func DayKey(t time.Time) string {
	return FormatWIB(t, DateLayout)
}

// ParseDay parses a YYYY-MM-DD day as midnight WIB.
func ParseDay(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, wibLocation)
}
