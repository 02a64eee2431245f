package views

import (
	"fmt"
	"io"
	"strings"

	"diskusage/internal/models"
	"diskusage/internal/services"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Column widths of the table, independent of the data
const (
	nameWidth   = 20
	mountWidth  = 30
	sizeWidth   = 12
	usageWidth  = 30
	noneMessage = "No volumes found matching the criteria."
)

var (
	headerFormat = fmt.Sprintf("%%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%-%ds",
		nameWidth, mountWidth, sizeWidth, sizeWidth, sizeWidth, usageWidth)
	rowFormat = fmt.Sprintf("%%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%s",
		nameWidth, mountWidth, sizeWidth, sizeWidth, sizeWidth)
)

// TableView renders the df-style table
type TableView struct {
	Thresholds   models.UsageThresholds
	ColorEnabled bool
	BarsEnabled  bool
	BarWidth     int
}

// Render writes the table, one row per record, followed by the totals line
func (v *TableView) Render(w io.Writer, records []models.VolumeRecord) error {
	var b strings.Builder

	if len(records) == 0 {
		fmt.Fprintln(&b, noneMessage)
		return write(w, b.String())
	}

	header := fmt.Sprintf(headerFormat, "Filesystem", "Mounted on", "Size", "Used", "Available", "Use%")
	if v.ColorEnabled {
		fmt.Fprintln(&b, v.style(color.Bold, color.Underline).Sprint(header))
	} else {
		fmt.Fprintln(&b, header)
		fmt.Fprintln(&b, strings.Repeat("-", len(header)))
	}

	for _, record := range records {
		fmt.Fprintln(&b, v.row(record))
	}

	totals := services.SummarizeVolumes(records)
	summary := fmt.Sprintf("Total: %s size, %s used, %s available",
		services.ByteLabel(totals.TotalSpace),
		services.ByteLabel(totals.UsedSpace),
		services.ByteLabel(totals.AvailableSpace))

	fmt.Fprintln(&b)
	if v.ColorEnabled {
		summary = v.style(color.Bold).Sprint(summary)
	}
	fmt.Fprintln(&b, summary)

	return write(w, b.String())
}

func (v *TableView) row(record models.VolumeRecord) string {
	width := v.BarWidth
	if width == 0 {
		width = services.DefaultBarWidth
	}

	row := fmt.Sprintf(rowFormat,
		services.Truncate(record.Name, nameWidth),
		services.Truncate(record.MountPoint, mountWidth),
		services.ByteLabel(record.TotalSpace),
		services.ByteLabel(record.UsedSpace),
		services.ByteLabel(record.AvailableSpace),
		services.ProgressGlyph(record.UsagePercentage, v.Thresholds, width, v.BarsEnabled, v.ColorEnabled),
	)

	if !v.ColorEnabled {
		return row
	}
	return services.Colorize(row, services.SeverityBand(record.UsagePercentage, v.Thresholds, v.ColorEnabled))
}

func (v *TableView) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return nil
}
