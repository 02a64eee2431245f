package services

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/sirupsen/logrus"
)

// Names accepted by NewSource
const (
	SourceAuto      = "auto"
	SourceGopsutil  = "gopsutil"
	SourceMountinfo = "mountinfo"
)

const volumeRequestTimeout = 10 * time.Second

// RawVolume is a volume exactly as the OS reported it
type RawVolume struct {
	Name           string
	MountPoint     string
	Total          uint64
	Available      uint64
	FilesystemType string
}

// VolumeSource lists the currently mounted volumes
type VolumeSource interface {
	Volumes(ctx context.Context) ([]RawVolume, error)
}

// ValidateSource checks a source name without touching the OS
func ValidateSource(kind string) error {
	switch strings.ToLower(kind) {
	case "", SourceAuto, SourceGopsutil, SourceMountinfo:
		return nil
	default:
		return errors.Errorf("invalid source: '%s'. Use '%s', '%s', or '%s'", kind, SourceAuto, SourceGopsutil, SourceMountinfo)
	}
}

// NewSource returns the volume source registered under kind
func NewSource(kind string, logger logrus.FieldLogger) (VolumeSource, error) {
	if err := ValidateSource(kind); err != nil {
		return nil, err
	}

	switch strings.ToLower(kind) {
	case SourceMountinfo:
		src, err := NewMountinfoSource(logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return NewGopsutilSource(logger), nil
	}
}

// GopsutilSource enumerates physical partitions through gopsutil
type GopsutilSource struct {
	logger     logrus.FieldLogger
	partitions func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usage      func(ctx context.Context, path string) (*disk.UsageStat, error)
}

// NewGopsutilSource creates a source backed by disk.Partitions and disk.Usage
func NewGopsutilSource(logger logrus.FieldLogger) *GopsutilSource {
	return &GopsutilSource{
		logger:     logger,
		partitions: disk.PartitionsWithContext,
		usage:      disk.UsageWithContext,
	}
}

// Volumes returns one entry per partition whose usage could be read.
// Partitions that fail are skipped; the call fails only if all of them do.
func (s *GopsutilSource) Volumes(ctx context.Context) ([]RawVolume, error) {
	ctx, cancel := context.WithTimeout(ctx, volumeRequestTimeout)
	defer cancel()

	partitions, err := s.partitions(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get partitions")
	}

	var result *multierror.Error
	volumes := make([]RawVolume, 0, len(partitions))

	for _, partition := range partitions {
		usage, err := s.usage(ctx, partition.Mountpoint)
		if err != nil {
			s.logger.WithField("mount_point", partition.Mountpoint).WithError(err).Warn("Could not get disk usage")
			result = multierror.Append(result, errors.Wrapf(err, "usage of %s", partition.Mountpoint))
			continue
		}

		fsType := partition.Fstype
		if fsType == "" {
			fsType = usage.Fstype
		}

		volumes = append(volumes, RawVolume{
			Name:           partition.Device,
			MountPoint:     partition.Mountpoint,
			Total:          usage.Total,
			Available:      usage.Free,
			FilesystemType: fsType,
		})
	}

	if len(volumes) == 0 && result != nil {
		return nil, result.ErrorOrNil()
	}

	return volumes, nil
}
