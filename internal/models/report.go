package models

import (
	"fmt"
	"strings"
)

// UsageThresholds holds the usage percentages where a volume turns yellow and red
type UsageThresholds struct {
	Yellow float64 `json:"yellow"`
	Red    float64 `json:"red"`
}

// DefaultThresholds returns the 70/90 cut-points
func DefaultThresholds() UsageThresholds {
	return UsageThresholds{Yellow: 70.0, Red: 90.0}
}

// Ordered reports whether yellow sits below red
func (t UsageThresholds) Ordered() bool {
	return t.Yellow < t.Red
}

// SortBy selects the ordering of the report
type SortBy int

const (
	SortByUsage SortBy = iota
	SortBySize
	SortByMountPoint
)

func (s SortBy) String() string {
	switch s {
	case SortByUsage:
		return "usage"
	case SortBySize:
		return "size"
	case SortByMountPoint:
		return "mount"
	default:
		return fmt.Sprintf("SortBy(%d)", int(s))
	}
}

// ParseSortBy accepts usage|u, size|s and mount|m|mountpoint in any case
func ParseSortBy(value string) (SortBy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "usage", "u":
		return SortByUsage, nil
	case "size", "s":
		return SortBySize, nil
	case "mount", "m", "mountpoint":
		return SortByMountPoint, nil
	default:
		return SortByUsage, fmt.Errorf("invalid sort option: '%s'. Use 'usage', 'size', or 'mount'", value)
	}
}

// Band is the severity class of a volume's usage
type Band int

const (
	BandNeutral Band = iota
	BandOk
	BandWarning
	BandCritical
)

func (b Band) String() string {
	switch b {
	case BandOk:
		return "ok"
	case BandWarning:
		return "warning"
	case BandCritical:
		return "critical"
	default:
		return "neutral"
	}
}

// MarshalText lets the band appear by name in JSON output
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// VolumeReport is a volume as emitted by the JSON view
type VolumeReport struct {
	VolumeRecord
	Band Band `json:"band"`
}

// ReportTotals sums the rendered volumes
type ReportTotals struct {
	TotalSpace     uint64 `json:"total_bytes"`
	UsedSpace      uint64 `json:"used_bytes"`
	AvailableSpace uint64 `json:"available_bytes"`
}

// Report is the complete JSON document
type Report struct {
	Volumes    []VolumeReport  `json:"volumes"`
	Total      ReportTotals    `json:"total"`
	Thresholds UsageThresholds `json:"thresholds"`
}
