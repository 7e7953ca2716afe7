package models

import (
	"slices"
	"time"
)

// ArchiveBucket groups approved cases by the calendar month of their gaming
// day. Cases with no gaming day fall into a single trailing bucket.
type ArchiveBucket struct {
	Label string // e.g. "March 2026"
	Month time.Month
	Year  int
	Cases []Case
}

const archiveBucketNoGamingDay = "No gaming day"

// GroupCasesByMonth partitions cases into month buckets keyed by the gaming
// day's month and year. Buckets are ordered newest first and each bucket's
// cases are re-sorted descending by gaming day.
func GroupCasesByMonth(cases []Case) []ArchiveBucket {
	byLabel := make(map[string]*ArchiveBucket)
	for _, c := range cases {
		label := archiveBucketNoGamingDay
		var month time.Month
		var year int
		if c.GamingDay != nil {
			label = c.GamingDay.Format("January 2006")
			month = c.GamingDay.Month()
			year = c.GamingDay.Year()
		}
		bucket, ok := byLabel[label]
		if !ok {
			bucket = &ArchiveBucket{Label: label, Month: month, Year: year}
			byLabel[label] = bucket
		}
		bucket.Cases = append(bucket.Cases, c)
	}

	buckets := make([]ArchiveBucket, 0, len(byLabel))
	for _, bucket := range byLabel {
		SortCasesByGamingDayDesc(bucket.Cases)
		buckets = append(buckets, *bucket)
	}

	slices.SortFunc(buckets, func(a, b ArchiveBucket) int {
		// the no-gaming-day bucket sinks to the end
		if a.Year == 0 && a.Month == 0 {
			return 1
		}
		if b.Year == 0 && b.Month == 0 {
			return -1
		}
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return int(b.Month) - int(a.Month)
	})
	return buckets
}
