package levelapi

import (
	"encoding/json"
	"testing"

	"github.com/beka-birhanu/vinom-pcg/analysis"
	dmn "github.com/beka-birhanu/vinom-pcg/domain"
	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsDefaults(t *testing.T) {
	var req BatchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"levels":[{"seed":4},{"width":15,"erosion":{"ratio":0.5}}]}`), &req))
	params := req.Parameters()
	require.Len(t, params, 2)

	want := pcg.DefaultParameters()
	want.Seed = 4
	assert.Equal(t, want, params[0])

	assert.Equal(t, 15, params[1].Width)
	assert.Equal(t, pcg.DefaultParameters().Height, params[1].Height)
	require.NotNil(t, params[1].Erosion)
	assert.Equal(t, 0.5, params[1].Erosion.Ratio)
}

func TestNewLevelResponse(t *testing.T) {
	p := pcg.DefaultParameters()
	p.Seed = 42
	res := pcg.Generate(p)
	resp := NewLevelResponse(&dmn.Level{
		Grid:   res.Grid,
		Seed:   res.Seed,
		Params: p,
		Report: analysis.AnalyzeGrid(res.Grid),
	})

	assert.Equal(t, 9, resp.Width)
	assert.Equal(t, 9, resp.Height)
	assert.Equal(t, res.Grid.Rows(), resp.Rows)
	assert.Len(t, resp.Cells, len(res.Grid.NonEmptyCells()))

	overlays := map[string]int{}
	ends := 0
	for _, c := range resp.Cells {
		if c.Overlay != "" {
			overlays[c.Overlay]++
		}
		if c.IsEnd {
			ends++
		}
	}
	assert.Equal(t, 1, overlays["Start"])
	assert.Equal(t, 1, overlays["End"])
	assert.Equal(t, len(res.Stars), overlays["Star"])
	assert.Equal(t, 1, ends)
}
