package controllers

import (
	"context"
	"fmt"
	"io"

	"diskusage/internal/config"
	"diskusage/internal/models"
	"diskusage/internal/services"
	"diskusage/internal/views"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNothingToShow ends a run that found no volume above the size threshold.
// It is a successful outcome, callers exit with status 0.
var ErrNothingToShow = errors.New("no volumes to show")

// SourceFactory builds the volume source named in the settings
type SourceFactory func(kind string, logger logrus.FieldLogger) (services.VolumeSource, error)

// ReportController runs one collect, filter, sort and render pass
type ReportController struct {
	newSource SourceFactory
	logger    logrus.FieldLogger
	out       io.Writer
	errOut    io.Writer
}

// NewReportController writes the report to out and guidance messages to errOut
func NewReportController(newSource SourceFactory, logger logrus.FieldLogger, out, errOut io.Writer) *ReportController {
	return &ReportController{
		newSource: newSource,
		logger:    logger,
		out:       out,
		errOut:    errOut,
	}
}

// Run validates settings before touching the OS, then produces the report
func (c *ReportController) Run(ctx context.Context, settings *config.Settings) error {
	sortBy, err := models.ParseSortBy(settings.Sort)
	if err != nil {
		return err
	}
	if settings.MinSize < 0 {
		return errors.Errorf("invalid min size: %d. Use a non-negative number of GB", settings.MinSize)
	}
	if err := services.ValidateSource(settings.Source); err != nil {
		return err
	}

	thresholds := settings.Thresholds()
	renderer, err := views.NewRenderer(views.Options{
		Format:       settings.Output,
		Thresholds:   thresholds,
		ColorEnabled: !settings.NoColor,
		BarsEnabled:  !settings.NoBars,
	})
	if err != nil {
		return err
	}

	if !thresholds.Ordered() {
		fmt.Fprintln(c.errOut, "Warning: Yellow threshold should be less than red threshold")
	}

	source, err := c.newSource(settings.Source, c.logger)
	if err != nil {
		return errors.Wrap(err, "failed to create volume source")
	}

	records, err := services.NewCollector(source, c.logger).Collect(ctx)
	if err != nil {
		return err
	}
	collected := len(records)

	minGB := uint64(settings.MinSize)
	records = services.FilterByType(records, settings.IncludeTypes, settings.ExcludeTypes)
	records = services.FilterBySize(records, minGB, settings.All)

	c.logger.WithFields(logrus.Fields{
		"collected": collected,
		"kept":      len(records),
		"min_size":  minGB,
		"all":       settings.All,
	}).Debug("Filtered volumes")

	if len(records) == 0 && !settings.All {
		fmt.Fprintf(c.errOut, "No volumes found with size >= %d GB. Try --all to show all volumes.\n", minGB)
		return ErrNothingToShow
	}

	services.SortVolumes(records, sortBy)
	c.logger.WithField("sort", sortBy).Debug("Sorted volumes")

	return renderer.Render(c.out, records)
}
