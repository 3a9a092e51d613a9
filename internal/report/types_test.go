package report

import (
	"testing"
	"time"

	"dashboard-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestParseBucket(t *testing.T) {
	b, err := ParseBucket(" Week ")
	assert.NoError(t, err)
	assert.Equal(t, BucketWeek, b)

	_, err = ParseBucket("year")
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestBucketWorkdays(t *testing.T) {
	assert.Equal(t, 1.0, BucketDay.Workdays())
	assert.Equal(t, 5.0, BucketWeek.Workdays())
	assert.Equal(t, 22.0, BucketMonth.Workdays())
}

func TestBucketLabel(t *testing.T) {
	e := model.LogEntry{LogDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Week: "2025-W23", Month: "2025-06"}
	assert.Equal(t, "2025-06-05", BucketDay.Label(e))
	assert.Equal(t, "2025-W23", BucketWeek.Label(e))
	assert.Equal(t, "2025-06", BucketMonth.Label(e))
}

func TestBucketValidLabel(t *testing.T) {
	tests := []struct {
		bucket Bucket
		label  string
		want   bool
	}{
		{BucketDay, "2025-06-05", true},
		{BucketDay, "2025-6-5", false},
		{BucketDay, "05-Jun", false},
		{BucketWeek, "2025-W23", true},
		{BucketWeek, "2025-W54", false},
		{BucketWeek, "2025-23", false},
		{BucketMonth, "2025-06", true},
		{BucketMonth, "2025-13", false},
		{BucketMonth, "2025-06-01", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.bucket)+" "+tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bucket.ValidLabel(tt.label))
		})
	}
}
