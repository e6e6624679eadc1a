package utils

import (
	"net/http"
	"time"
)

// DateTimeLayout adalah format waktu di seluruh API ("yyyy-MM-dd HH:mm:ss")
const DateTimeLayout = "2006-01-02 15:04:05"

func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return time.Time{}, NewAppError(http.StatusBadRequest, "invalid datetime %q, expected format %s", value, DateTimeLayout)
	}
	return t, nil
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
