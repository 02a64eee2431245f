package models

import "math"

// Binary size units used for thresholds and labels
const (
	KB uint64 = 1 << 10
	MB uint64 = 1 << 20
	GB uint64 = 1 << 30
	TB uint64 = 1 << 40
)

// VolumeRecord represents one mounted volume at snapshot time.
// UsedSpace and UsagePercentage are derived in NewVolumeRecord and must not be set directly.
type VolumeRecord struct {
	Name            string  `json:"name"`
	MountPoint      string  `json:"mount_point"`
	TotalSpace      uint64  `json:"total_bytes"`
	AvailableSpace  uint64  `json:"available_bytes"`
	UsedSpace       uint64  `json:"used_bytes"`
	UsagePercentage float64 `json:"usage_percent"`
	FilesystemType  string  `json:"filesystem"`
}

// NewVolumeRecord builds a record and derives its used space and usage percentage.
// Used space saturates at zero when the OS reports more available than total space.
func NewVolumeRecord(name, mountPoint string, total, available uint64, fsType string) VolumeRecord {
	var used uint64
	if total > available {
		used = total - available
	}

	usage := 0.0
	if total > 0 {
		usage = float64(used) / float64(total) * 100
	}

	return VolumeRecord{
		Name:            name,
		MountPoint:      mountPoint,
		TotalSpace:      total,
		AvailableSpace:  available,
		UsedSpace:       used,
		UsagePercentage: usage,
		FilesystemType:  fsType,
	}
}

// MeetsSizeThreshold reports whether the volume is at least minGB binary gigabytes
func (v VolumeRecord) MeetsSizeThreshold(minGB uint64) bool {
	// no uint64 byte count reaches a threshold that overflows
	if minGB > math.MaxUint64/GB {
		return false
	}
	return v.TotalSpace >= minGB*GB
}
