package services

import (
	"context"
	"strings"

	"diskusage/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Collector turns the volumes reported by a VolumeSource into records
type Collector struct {
	source VolumeSource
	logger logrus.FieldLogger
}

// NewCollector creates a collector reading from source
func NewCollector(source VolumeSource, logger logrus.FieldLogger) *Collector {
	return &Collector{
		source: source,
		logger: logger,
	}
}

// Collect returns one record per reported volume, in the order the source reported them
func (c *Collector) Collect(ctx context.Context) ([]models.VolumeRecord, error) {
	raw, err := c.source.Volumes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list volumes")
	}

	records := make([]models.VolumeRecord, 0, len(raw))
	for _, v := range raw {
		record := models.NewVolumeRecord(v.Name, v.MountPoint, v.Total, v.Available, v.FilesystemType)
		c.logger.WithFields(logrus.Fields{
			"name":        record.Name,
			"mount_point": record.MountPoint,
			"filesystem":  record.FilesystemType,
			"size":        humanize.IBytes(record.TotalSpace),
			"used":        humanize.IBytes(record.UsedSpace),
		}).Debug("Collected volume")
		records = append(records, record)
	}

	return records, nil
}

// FilterBySize keeps volumes of at least minGB binary gigabytes, preserving order.
// With includeAll the input is returned unchanged.
func FilterBySize(records []models.VolumeRecord, minGB uint64, includeAll bool) []models.VolumeRecord {
	if includeAll {
		return records
	}
	return lo.Filter(records, func(v models.VolumeRecord, _ int) bool {
		return v.MeetsSizeThreshold(minGB)
	})
}

// FilterByType keeps volumes whose filesystem type is listed in include (all when empty)
// and not listed in exclude. Types compare case-insensitively.
func FilterByType(records []models.VolumeRecord, include, exclude []string) []models.VolumeRecord {
	if len(include) == 0 && len(exclude) == 0 {
		return records
	}

	allowed := typeSet(include)
	denied := typeSet(exclude)

	return lo.Filter(records, func(v models.VolumeRecord, _ int) bool {
		fsType := strings.ToLower(v.FilesystemType)
		if len(allowed) > 0 {
			if _, ok := allowed[fsType]; !ok {
				return false
			}
		}
		_, skip := denied[fsType]
		return !skip
	})
}

func typeSet(types []string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

// SummarizeVolumes sums the sizes of the given records
func SummarizeVolumes(records []models.VolumeRecord) models.ReportTotals {
	return models.ReportTotals{
		TotalSpace:     lo.SumBy(records, func(v models.VolumeRecord) uint64 { return v.TotalSpace }),
		UsedSpace:      lo.SumBy(records, func(v models.VolumeRecord) uint64 { return v.UsedSpace }),
		AvailableSpace: lo.SumBy(records, func(v models.VolumeRecord) uint64 { return v.AvailableSpace }),
	}
}
