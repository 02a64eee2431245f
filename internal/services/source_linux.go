//go:build linux

package services

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/moby/sys/mountinfo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// MountinfoSource reads /proc/self/mountinfo and statfs(2)s every block-device mount
type MountinfoSource struct {
	logger logrus.FieldLogger
	mounts func(filter mountinfo.FilterFunc) ([]*mountinfo.Info, error)
	statfs func(path string, buf *unix.Statfs_t) error
}

// NewMountinfoSource creates a Linux source that skips pseudo filesystems
func NewMountinfoSource(logger logrus.FieldLogger) (*MountinfoSource, error) {
	return &MountinfoSource{
		logger: logger,
		mounts: mountinfo.GetMounts,
		statfs: unix.Statfs,
	}, nil
}

// deviceBacked keeps mounts whose source is a device node
func deviceBacked(info *mountinfo.Info) (skip, stop bool) {
	return !strings.HasPrefix(info.Source, "/dev/"), false
}

func (s *MountinfoSource) Volumes(ctx context.Context) ([]RawVolume, error) {
	mounts, err := s.mounts(deviceBacked)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read mountinfo")
	}

	var result *multierror.Error
	volumes := make([]RawVolume, 0, len(mounts))

	for _, m := range mounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var st unix.Statfs_t
		if err := s.statfs(m.Mountpoint, &st); err != nil {
			s.logger.WithField("mount_point", m.Mountpoint).WithError(err).Warn("Could not statfs mount")
			result = multierror.Append(result, errors.Wrapf(err, "statfs %s", m.Mountpoint))
			continue
		}

		bsize := uint64(st.Bsize)
		volumes = append(volumes, RawVolume{
			Name:           m.Source,
			MountPoint:     m.Mountpoint,
			Total:          st.Blocks * bsize,
			Available:      st.Bavail * bsize,
			FilesystemType: m.FSType,
		})
	}

	if len(volumes) == 0 && result != nil {
		return nil, result.ErrorOrNil()
	}

	return volumes, nil
}
