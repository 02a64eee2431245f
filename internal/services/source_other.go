//go:build !linux

package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MountinfoSource is only available on Linux
type MountinfoSource struct{}

// NewMountinfoSource always fails outside Linux
func NewMountinfoSource(logrus.FieldLogger) (*MountinfoSource, error) {
	return nil, errors.New("the mountinfo source is only supported on linux")
}

func (s *MountinfoSource) Volumes(context.Context) ([]RawVolume, error) {
	return nil, errors.New("the mountinfo source is only supported on linux")
}
