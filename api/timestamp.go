package api

import "time"

// TimestampLayout renders a local date-time without zone offset. Trailing
// zeros of the fractional second are dropped, and the fraction is omitted
// entirely on whole seconds.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a point in time that serializes as a local date-time.
type Timestamp time.Time

// Clock returns the current time.
type Clock func() time.Time

func (t Timestamp) String() string {
	return time.Time(t).Local().Format(TimestampLayout)
}

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := time.ParseInLocation(TimestampLayout, string(text), time.Local)
	if err != nil {
		return err
	}

	*t = Timestamp(parsed)

	return nil
}
