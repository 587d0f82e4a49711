package parquetstats

import (
	"encoding/binary"
	"time"
)

const (
	jan011970   = 2440588
	secPerDay   = 24 * 60 * 60
	nanosPerDay = secPerDay * 1000000000
)

// Int96 is a parquet INT96 timestamp: 8 bytes of little-endian nanoseconds
// within the day followed by 4 bytes of little-endian Julian day number
// (https://en.wikipedia.org/wiki/Julian_day).
type Int96 [12]byte

// Julian day numbers for Jan 1, 1400 and Dec 31, 9999, the calendar range
// within which a stored timestamp is considered valid. Timestamps outside
// this range come from producers using a different or legacy encoding, and
// their statistics must not be trusted.
var (
	minValidDay = midnightJD(time.Date(1400, time.January, 1, 0, 0, 0, 0, time.UTC))
	maxValidDay = midnightJD(time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC))
)

// midnightJD expects t to be exactly at midnight UTC, so that the Unix
// seconds divide evenly into days even before the epoch.
func midnightJD(t time.Time) uint32 {
	return uint32(t.Unix()/secPerDay) + jan011970
}

func timeToJD(t time.Time) (uint32, uint64) {
	days := t.Unix() / secPerDay
	nSecs := t.UnixNano() - (days * secPerDay * int64(time.Second))

	// unix time starts from Jan 1, 1970 AC, this day is 2440588 day after the Jan 1, 4713 BC
	return uint32(days) + jan011970, uint64(nSecs)
}

func jdToTime(jd uint32, nsec uint64) time.Time {
	sec := int64(jd-jan011970) * secPerDay
	return time.Unix(sec, int64(nsec)).UTC()
}

// JulianDay returns the Julian day number part of the timestamp.
func (v Int96) JulianDay() uint32 {
	return binary.LittleEndian.Uint32(v[8:])
}

// Nanos returns the nanoseconds-within-day part of the timestamp.
func (v Int96) Nanos() uint64 {
	return binary.LittleEndian.Uint64(v[:8])
}

// Valid reports whether the timestamp denotes a representable date and time:
// the nanosecond part must fit within one day and the day must fall between
// Jan 1, 1400 and Dec 31, 9999.
func (v Int96) Valid() bool {
	if v.Nanos() >= nanosPerDay {
		return false
	}
	day := v.JulianDay()
	return day >= minValidDay && day <= maxValidDay
}

// Before reports whether v is earlier than other.
func (v Int96) Before(other Int96) bool {
	d1, d2 := v.JulianDay(), other.JulianDay()
	if d1 != d2 {
		return d1 < d2
	}
	return v.Nanos() < other.Nanos()
}

// Time converts the timestamp into a time.Time in UTC.
// WARNING: this function is limited to the times after Unix epoch (Jan 01. 1970) and can not convert dates before that.
func (v Int96) Time() time.Time {
	return jdToTime(v.JulianDay(), v.Nanos())
}

// TimeToInt96 converts a go time.Time into an Int96 Julian date.
func TimeToInt96(t time.Time) Int96 {
	var v Int96
	days, nSecs := timeToJD(t)
	binary.LittleEndian.PutUint64(v[:8], nSecs)
	binary.LittleEndian.PutUint32(v[8:], days)

	return v
}
