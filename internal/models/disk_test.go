package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVolumeRecord(t *testing.T) {
	v := NewVolumeRecord("sda1", "/", 100*GB, 30*GB, "ext4")

	assert.Equal(t, 70*GB, v.UsedSpace)
	assert.Equal(t, 70.0, v.UsagePercentage)
	assert.Equal(t, "ext4", v.FilesystemType)
	assert.True(t, v.MeetsSizeThreshold(1))
	assert.False(t, v.MeetsSizeThreshold(200))
}

func TestNewVolumeRecordDegenerate(t *testing.T) {
	tests := []struct {
		name      string
		total     uint64
		available uint64
		wantUsed  uint64
		wantUsage float64
	}{
		{"zero total", 0, 0, 0, 0},
		{"zero total with available", 0, 10 * GB, 0, 0},
		{"available exceeds total", 10 * GB, 20 * GB, 0, 0},
		{"full", 10 * GB, 0, 10 * GB, 100},
		{"max values", math.MaxUint64, 0, math.MaxUint64, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVolumeRecord("dev", "/mnt", tt.total, tt.available, "xfs")
			assert.Equal(t, tt.wantUsed, v.UsedSpace)
			assert.Equal(t, tt.wantUsage, v.UsagePercentage)
			assert.False(t, math.IsNaN(v.UsagePercentage))
			assert.False(t, math.IsInf(v.UsagePercentage, 0))
		})
	}
}

func TestNewVolumeRecordUsageInRange(t *testing.T) {
	samples := []uint64{0, 1, 512, KB, MB - 1, GB, 3*GB + 7, TB, math.MaxUint64}
	for _, total := range samples {
		for _, available := range samples {
			v := NewVolumeRecord("dev", "/", total, available, "")
			if total >= available {
				require.Equal(t, total-available, v.UsedSpace)
			} else {
				require.Zero(t, v.UsedSpace)
			}
			require.GreaterOrEqual(t, v.UsagePercentage, 0.0)
			require.LessOrEqual(t, v.UsagePercentage, 100.0)
		}
	}
}

func TestMeetsSizeThreshold(t *testing.T) {
	small := NewVolumeRecord("sda1", "/", 500*MB, 100*MB, "ext4")
	assert.False(t, small.MeetsSizeThreshold(1))
	assert.True(t, small.MeetsSizeThreshold(0))

	exact := NewVolumeRecord("sdb1", "/data", 5*GB, 0, "ext4")
	assert.True(t, exact.MeetsSizeThreshold(5))
	assert.False(t, exact.MeetsSizeThreshold(6))

	huge := NewVolumeRecord("sdc1", "/huge", math.MaxUint64, 0, "ext4")
	assert.False(t, huge.MeetsSizeThreshold(math.MaxUint64))
}
