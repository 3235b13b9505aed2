package repository

import (
	"encoding/base64"
	"time"
)

const (
	timeFormat = "2006-01-02T15:04:05.999Z07:00" // reduced precision of RFC3339Nano

	defaultPageNum = 10
	maxPageNum     = 30
)

// EncodeCursor will encode the last-seen timestamp into an opaque page cursor
func EncodeCursor(t time.Time) string {
	timeString := t.Format(timeFormat)
	return base64.StdEncoding.EncodeToString([]byte(timeString))
}

// DecodeCursor will decode an opaque page cursor back into a timestamp
func DecodeCursor(encodedTime string) (time.Time, error) {
	byt, err := base64.StdEncoding.DecodeString(encodedTime)
	if err != nil {
		return time.Time{}, err
	}

	timeString := string(byt)
	t, err := time.Parse(timeFormat, timeString)
	return t, err
}

// PageVerify clamps num into the allowed page-size range
func PageVerify(num *int64) {
	if *num <= 0 || *num > maxPageNum {
		*num = defaultPageNum
	}
}
