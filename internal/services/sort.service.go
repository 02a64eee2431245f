package services

import (
	"cmp"
	"slices"
	"strings"

	"diskusage/internal/models"
)

// SortVolumes orders records in place. Usage and size sort descending,
// mount points ascending byte-wise. Ties keep their input order.
func SortVolumes(records []models.VolumeRecord, sortBy models.SortBy) {
	switch sortBy {
	case models.SortByUsage:
		slices.SortStableFunc(records, func(a, b models.VolumeRecord) int {
			return compareUsage(b.UsagePercentage, a.UsagePercentage)
		})
	case models.SortBySize:
		slices.SortStableFunc(records, func(a, b models.VolumeRecord) int {
			return cmp.Compare(b.TotalSpace, a.TotalSpace)
		})
	case models.SortByMountPoint:
		slices.SortStableFunc(records, func(a, b models.VolumeRecord) int {
			return strings.Compare(a.MountPoint, b.MountPoint)
		})
	}
}

// compareUsage treats NaN as equal to everything
func compareUsage(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
