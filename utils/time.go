package utils

import "time"

// NowMilli is the unix millisecond timestamp used to disambiguate archived
// file names.
func NowMilli() int64 {
	return time.Now().UnixMilli()
}
