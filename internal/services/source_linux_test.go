//go:build linux

package services

import (
	"context"
	"errors"
	"testing"

	"diskusage/internal/logging"

	"github.com/moby/sys/mountinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func mockMounts() []*mountinfo.Info {
	return []*mountinfo.Info{
		{Source: "/dev/nvme0n1p2", Mountpoint: "/", FSType: "ext4"},
		{Source: "proc", Mountpoint: "/proc", FSType: "proc"},
		{Source: "/dev/nvme0n1p1", Mountpoint: "/boot", FSType: "vfat"},
		{Source: "/dev/sdb1", Mountpoint: "/broken", FSType: "ext4"},
	}
}

func newMockMountinfoSource(t *testing.T) *MountinfoSource {
	src, err := NewMountinfoSource(logging.Discard())
	require.NoError(t, err)

	src.mounts = func(filter mountinfo.FilterFunc) ([]*mountinfo.Info, error) {
		var out []*mountinfo.Info
		for _, m := range mockMounts() {
			if skip, _ := filter(m); !skip {
				out = append(out, m)
			}
		}
		return out, nil
	}
	src.statfs = func(path string, buf *unix.Statfs_t) error {
		switch path {
		case "/":
			buf.Bsize = 4096
			buf.Blocks = 1000
			buf.Bavail = 250
		case "/boot":
			buf.Bsize = 1024
			buf.Blocks = 512
			buf.Bavail = 512
		default:
			return errors.New("stale file handle")
		}
		return nil
	}
	return src
}

func TestMountinfoSourceVolumes(t *testing.T) {
	volumes, err := newMockMountinfoSource(t).Volumes(context.Background())
	require.NoError(t, err)
	require.Len(t, volumes, 2)

	assert.Equal(t, RawVolume{
		Name:           "/dev/nvme0n1p2",
		MountPoint:     "/",
		Total:          4096 * 1000,
		Available:      4096 * 250,
		FilesystemType: "ext4",
	}, volumes[0])
	assert.Equal(t, "/boot", volumes[1].MountPoint)
	assert.Equal(t, uint64(512*1024), volumes[1].Total)
}

func TestMountinfoSourceReadError(t *testing.T) {
	src := newMockMountinfoSource(t)
	src.mounts = func(mountinfo.FilterFunc) ([]*mountinfo.Info, error) {
		return nil, errors.New("no such file")
	}

	_, err := src.Volumes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mountinfo")
}

func TestMountinfoSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newMockMountinfoSource(t).Volumes(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSourceMountinfo(t *testing.T) {
	src, err := NewSource(SourceMountinfo, logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, &MountinfoSource{}, src)
}
