// unixtimestamp package provides a time.Time wrapper that marshals to/from Unix timestamp (integer, seconds)
package unixtimestamp

import (
	"strconv"
	"time"
)

// New existing time.Time
func New(t time.Time) *UnixTimestamp {
	return &UnixTimestamp{Time: t}
}

// Now returns a new UnixTimestamp for the current time
func Now() *UnixTimestamp {
	return New(time.Now().UTC()) // nil tz and remove monotonic clock
}

// UnixTimestamp is a time.Time that marshals to/from Unix timestamp (seconds)
// Use pointer (*UnixTimestamp) and `omitempty` in structs for JSON marshaling
type UnixTimestamp struct {
	time.Time
}

// Unix seconds, 0 for zero or pre-epoch times
func (ut UnixTimestamp) Seconds() int64 {
	if ut.Time.After(zerotime) {
		return ut.Time.Unix()
	}
	return 0
}

func (ut UnixTimestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(ut.Seconds(), 10)), nil
}

func (ut *UnixTimestamp) UnmarshalJSON(dat []byte) error {
	unix, err := strconv.ParseInt(string(dat), 10, 64)
	if err != nil {
		return err
	}
	if unix == 0 {
		ut.Time = time.Time{}
		return nil
	}
	ut.Time = time.Unix(unix, 0).UTC()
	return nil
}

// MarshalYAML as seconds, same as json
func (ut UnixTimestamp) MarshalYAML() (interface{}, error) {
	return ut.Seconds(), nil
}

var zerotime = time.Unix(0, 0)
