package views

import (
	"io"
	"strings"

	"diskusage/internal/models"
	"diskusage/internal/services"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Output formats accepted by NewRenderer
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Renderer writes a report for an already filtered and sorted volume list
type Renderer interface {
	Render(w io.Writer, records []models.VolumeRecord) error
}

// Options configures the renderer built by NewRenderer
type Options struct {
	Format       string
	Thresholds   models.UsageThresholds
	ColorEnabled bool
	BarsEnabled  bool
}

// ValidateFormat checks an output format name
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "", FormatTable, FormatJSON:
		return nil
	default:
		return errors.Errorf("invalid output format: '%s'. Use '%s' or '%s'", format, FormatTable, FormatJSON)
	}
}

// NewRenderer returns the renderer for opts.Format, the table when empty
func NewRenderer(opts Options) (Renderer, error) {
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	if strings.ToLower(opts.Format) == FormatJSON {
		return &JSONView{Thresholds: opts.Thresholds}, nil
	}

	return &TableView{
		Thresholds:   opts.Thresholds,
		ColorEnabled: opts.ColorEnabled,
		BarsEnabled:  opts.BarsEnabled,
		BarWidth:     services.DefaultBarWidth,
	}, nil
}

// JSONView renders the report as an indented JSON document.
// Bands are always computed, colour settings do not apply.
type JSONView struct {
	Thresholds models.UsageThresholds
}

func (v *JSONView) Render(w io.Writer, records []models.VolumeRecord) error {
	report := models.Report{
		Volumes:    make([]models.VolumeReport, 0, len(records)),
		Total:      services.SummarizeVolumes(records),
		Thresholds: v.Thresholds,
	}

	for _, record := range records {
		report.Volumes = append(report.Volumes, models.VolumeReport{
			VolumeRecord: record,
			Band:         services.SeverityBand(record.UsagePercentage, v.Thresholds, true),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "failed to encode report")
	}
	return nil
}
