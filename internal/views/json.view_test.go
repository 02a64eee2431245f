package views

import (
	"bytes"
	"testing"

	"diskusage/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONView(t *testing.T) {
	var buf bytes.Buffer
	view := &JSONView{Thresholds: models.DefaultThresholds()}
	require.NoError(t, view.Render(&buf, scenarioRecords()))

	var doc struct {
		Volumes []struct {
			Name       string  `json:"name"`
			MountPoint string  `json:"mount_point"`
			Total      uint64  `json:"total_bytes"`
			Used       uint64  `json:"used_bytes"`
			Usage      float64 `json:"usage_percent"`
			Band       string  `json:"band"`
		} `json:"volumes"`
		Total struct {
			Total uint64 `json:"total_bytes"`
		} `json:"total"`
		Thresholds models.UsageThresholds `json:"thresholds"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Volumes, 2)
	assert.Equal(t, "/", doc.Volumes[0].MountPoint)
	assert.Equal(t, 50.0, doc.Volumes[0].Usage)
	assert.Equal(t, "ok", doc.Volumes[0].Band)
	assert.Equal(t, 10*models.GB, doc.Volumes[1].Used)
	assert.Equal(t, 200*models.GB, doc.Total.Total)
	assert.Equal(t, 90.0, doc.Thresholds.Red)
}

func TestJSONViewEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONView{}).Render(&buf, nil))
	assert.Contains(t, buf.String(), `"volumes": []`)
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(Options{})
	require.NoError(t, err)
	assert.IsType(t, &TableView{}, r)

	r, err = NewRenderer(Options{Format: "JSON"})
	require.NoError(t, err)
	assert.IsType(t, &JSONView{}, r)

	_, err = NewRenderer(Options{Format: "yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format: 'yaml'")
}
