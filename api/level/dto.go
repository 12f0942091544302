// Package levelapi provides the request and response shapes of the level endpoints.
package levelapi

import (
	"encoding/json"
	"time"

	"github.com/beka-birhanu/vinom-pcg/analysis"
	dmn "github.com/beka-birhanu/vinom-pcg/domain"
	"github.com/beka-birhanu/vinom-pcg/pcg"
)

// CellDTO describes one passable cell. Cells missing from a response are walls.
type CellDTO struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Ground  string `json:"ground"`
	Overlay string `json:"overlay,omitempty"`
	IsEnd   bool   `json:"is_end,omitempty"`
}

// LevelResponse is a generated level.
type LevelResponse struct {
	Seed   int             `json:"seed"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Rows   []string        `json:"rows"`
	Cells  []CellDTO       `json:"cells"`
	Params pcg.Parameters  `json:"params"`
	Report analysis.Report `json:"report"`
}

// Params decodes level parameters on top of pcg.DefaultParameters, so
// omitted fields keep their defaults.
type Params pcg.Parameters

// UnmarshalJSON implements json.Unmarshaler.
func (p *Params) UnmarshalJSON(b []byte) error {
	v := pcg.DefaultParameters()
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Params(v)
	return nil
}

// BatchRequest asks for several levels at once.
type BatchRequest struct {
	Levels []Params `json:"levels" binding:"required"`
}

// Parameters returns the requested parameter sets.
func (r BatchRequest) Parameters() []pcg.Parameters {
	params := make([]pcg.Parameters, len(r.Levels))
	for idx, p := range r.Levels {
		params[idx] = pcg.Parameters(p)
	}
	return params
}

// SaveResponse identifies a stored level.
type SaveResponse struct {
	ID string `json:"id"`
}

// RecordResponse describes a stored level without its grid.
type RecordResponse struct {
	ID        string         `json:"id"`
	Seed      int            `json:"seed"`
	Author    string         `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
	Params    pcg.Parameters `json:"params"`
}

// NewLevelResponse converts a level for the wire.
func NewLevelResponse(lvl *dmn.Level) *LevelResponse {
	g := lvl.Grid
	passable := g.NonEmptyCells()
	cells := make([]CellDTO, 0, len(passable))
	for _, p := range passable {
		c := g.At(p)
		dto := CellDTO{X: p.X, Y: p.Y, Ground: c.Ground.String(), IsEnd: c.IsEnd}
		if c.Overlay != pcg.None {
			dto.Overlay = c.Overlay.String()
		}
		cells = append(cells, dto)
	}

	return &LevelResponse{
		Seed:   lvl.Seed,
		Width:  g.Width(),
		Height: g.Height(),
		Rows:   g.Rows(),
		Cells:  cells,
		Params: lvl.Params,
		Report: lvl.Report,
	}
}

// NewRecordResponse converts a stored record for the wire.
func NewRecordResponse(rec *dmn.LevelRecord) *RecordResponse {
	return &RecordResponse{
		ID:        rec.ID.String(),
		Seed:      rec.Seed,
		Author:    rec.Author,
		CreatedAt: rec.CreatedAt,
		Params:    rec.Params,
	}
}
