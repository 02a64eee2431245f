package services

import (
	"fmt"
	"math"
	"strings"

	"diskusage/internal/models"

	"github.com/fatih/color"
)

// DefaultBarWidth is the number of glyphs in a usage bar
const DefaultBarWidth = 20

const (
	barFilled = "█"
	barEmpty  = "░"
	ellipsis  = "..."
)

var bandAttributes = map[models.Band]color.Attribute{
	models.BandOk:       color.FgGreen,
	models.BandWarning:  color.FgYellow,
	models.BandCritical: color.FgRed,
}

// ByteLabel renders a byte count in the largest binary unit it fills, KB at minimum
func ByteLabel(bytes uint64) string {
	switch {
	case bytes >= models.TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(models.TB))
	case bytes >= models.GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(models.GB))
	case bytes >= models.MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(models.MB))
	default:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(models.KB))
	}
}

// SeverityBand classifies a usage percentage. Red is checked before yellow,
// so inverted thresholds still classify deterministically.
func SeverityBand(usage float64, thresholds models.UsageThresholds, colorEnabled bool) models.Band {
	if !colorEnabled {
		return models.BandNeutral
	}

	switch {
	case usage >= thresholds.Red:
		return models.BandCritical
	case usage >= thresholds.Yellow:
		return models.BandWarning
	default:
		return models.BandOk
	}
}

// Colorize wraps s in the escape sequences of band. Neutral text is returned as is.
func Colorize(s string, band models.Band) string {
	attr, ok := bandAttributes[band]
	if !ok {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

// FormatPercent renders a usage percentage with one decimal
func FormatPercent(usage float64) string {
	return fmt.Sprintf("%.1f%%", usage)
}

// ProgressGlyph renders a usage bar of width glyphs followed by the percentage.
// Without bars only the percentage is returned.
func ProgressGlyph(usage float64, thresholds models.UsageThresholds, width int, barsEnabled, colorEnabled bool) string {
	if !barsEnabled {
		return FormatPercent(usage)
	}
	if width < 0 {
		width = 0
	}

	filled := 0
	if scaled := math.Round(usage / 100 * float64(width)); !math.IsNaN(scaled) {
		filled = int(math.Max(0, math.Min(scaled, float64(width))))
	}

	bar := strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, width-filled)
	if colorEnabled {
		bar = Colorize(bar, SeverityBand(usage, thresholds, colorEnabled))
	}

	return bar + " " + FormatPercent(usage)
}

// Truncate shortens s to maxLen characters, ending it with "..." when it had to cut.
// Limits below 3 leave no room for the ellipsis and cut plainly.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < len(ellipsis) {
		if maxLen < 0 {
			maxLen = 0
		}
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
