package pcg

import (
	"errors"
	"fmt"
	"math"
)

// RandomSeed asks the generator to draw a fresh seed.
const RandomSeed = -1

const (
	defaultDimension           = 9
	defaultStarCount           = 3
	defaultMinStarDistance     = 3
	defaultEndMaxHeightPercent = 40
)

// ErosionParams configures the optional empty-tile erosion stage.
type ErosionParams struct {
	Ratio float64 `json:"ratio" yaml:"ratio" bson:"ratio"` // fraction of candidates to erode (0.0 to 1.0)
}

// Parameters describes a single level to generate.
type Parameters struct {
	Width  int `json:"width" yaml:"width" bson:"width"`
	Height int `json:"height" yaml:"height" bson:"height"`
	Seed   int `json:"seed" yaml:"seed" bson:"seed"` // RandomSeed picks one; any other value, negative included, is used as is

	IceRatio      float64 `json:"ice_ratio" yaml:"ice_ratio" bson:"iceRatio"`
	PiquesRatio   float64 `json:"piques_ratio" yaml:"piques_ratio" bson:"piquesRatio"`
	DoorUpRatio   float64 `json:"door_up_ratio" yaml:"door_up_ratio" bson:"doorUpRatio"`
	DoorDownRatio float64 `json:"door_down_ratio" yaml:"door_down_ratio" bson:"doorDownRatio"`

	LoopChance float64 `json:"loop_chance" yaml:"loop_chance" bson:"loopChance"`
	MaxLoops   int     `json:"max_loops" yaml:"max_loops" bson:"maxLoops"` // 0 means unbounded

	StarCount       int     `json:"star_count" yaml:"star_count" bson:"starCount"`
	MinStarDistance float64 `json:"min_star_distance" yaml:"min_star_distance" bson:"minStarDistance"`

	MovingPlatformRatio float64 `json:"moving_platform_ratio" yaml:"moving_platform_ratio" bson:"movingPlatformRatio"`

	RandomEnd           bool     `json:"random_end" yaml:"random_end" bson:"randomEnd"`
	EndPosition         Position `json:"end_position" yaml:"end_position" bson:"endPosition"`
	EndMaxHeightPercent float64  `json:"end_max_height_percent" yaml:"end_max_height_percent" bson:"endMaxHeightPercent"`

	Erosion *ErosionParams `json:"erosion,omitempty" yaml:"erosion,omitempty" bson:"erosion,omitempty"`
}

// DefaultParameters returns a small, hazard-free level with a random seed.
func DefaultParameters() Parameters {
	return Parameters{
		Width:               defaultDimension,
		Height:              defaultDimension,
		Seed:                RandomSeed,
		StarCount:           defaultStarCount,
		MinStarDistance:     defaultMinStarDistance,
		RandomEnd:           true,
		EndMaxHeightPercent: defaultEndMaxHeightPercent,
	}
}

// Normalize returns a copy of p with every field clamped into its valid range.
func (p Parameters) Normalize() Parameters {
	p.Width = clampDimension(p.Width)
	p.Height = clampDimension(p.Height)

	p.IceRatio = clampUnit(p.IceRatio)
	p.PiquesRatio = clampUnit(p.PiquesRatio)
	p.DoorUpRatio = clampUnit(p.DoorUpRatio)
	p.DoorDownRatio = clampUnit(p.DoorDownRatio)
	p.LoopChance = clampUnit(p.LoopChance)
	p.MovingPlatformRatio = clampUnit(p.MovingPlatformRatio)

	p.MaxLoops = max(p.MaxLoops, 0)
	p.StarCount = max(p.StarCount, 0)
	if math.IsNaN(p.MinStarDistance) || p.MinStarDistance < 0 {
		p.MinStarDistance = 0
	}
	if math.IsNaN(p.EndMaxHeightPercent) {
		p.EndMaxHeightPercent = defaultEndMaxHeightPercent
	}
	p.EndMaxHeightPercent = min(max(p.EndMaxHeightPercent, 0), 100)

	if p.Erosion != nil {
		p.Erosion = &ErosionParams{Ratio: clampUnit(p.Erosion.Ratio)}
	}
	return p
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}

// Validate reports every out-of-range field.
// Generate never calls it: the generator normalizes instead of rejecting.
func (p Parameters) Validate() error {
	var errs []error

	if p.Width < MinDimension || p.Width > MaxDimension {
		errs = append(errs, fmt.Errorf("width %d not in [%d,%d]", p.Width, MinDimension, MaxDimension))
	}
	if p.Height < MinDimension || p.Height > MaxDimension {
		errs = append(errs, fmt.Errorf("height %d not in [%d,%d]", p.Height, MinDimension, MaxDimension))
	}

	ratios := []struct {
		name  string
		value float64
	}{
		{"ice_ratio", p.IceRatio},
		{"piques_ratio", p.PiquesRatio},
		{"door_up_ratio", p.DoorUpRatio},
		{"door_down_ratio", p.DoorDownRatio},
		{"loop_chance", p.LoopChance},
		{"moving_platform_ratio", p.MovingPlatformRatio},
	}
	if p.Erosion != nil {
		ratios = append(ratios, struct {
			name  string
			value float64
		}{"erosion.ratio", p.Erosion.Ratio})
	}
	for _, r := range ratios {
		if math.IsNaN(r.value) || r.value < 0 || r.value > 1 {
			errs = append(errs, fmt.Errorf("%s %v not in [0,1]", r.name, r.value))
		}
	}

	if p.MaxLoops < 0 {
		errs = append(errs, fmt.Errorf("max_loops %d must be non-negative", p.MaxLoops))
	}
	if p.StarCount < 0 {
		errs = append(errs, fmt.Errorf("star_count %d must be non-negative", p.StarCount))
	}
	if math.IsNaN(p.MinStarDistance) || p.MinStarDistance < 0 {
		errs = append(errs, fmt.Errorf("min_star_distance %v must be non-negative", p.MinStarDistance))
	}
	if math.IsNaN(p.EndMaxHeightPercent) || p.EndMaxHeightPercent < 0 || p.EndMaxHeightPercent > 100 {
		errs = append(errs, fmt.Errorf("end_max_height_percent %v not in [0,100]", p.EndMaxHeightPercent))
	}

	return errors.Join(errs...)
}

// GroundRatios extracts the hazard ratios used by the ground roller.
func (p Parameters) GroundRatios() GroundRatios {
	return GroundRatios{
		Ice:      p.IceRatio,
		Piques:   p.PiquesRatio,
		DoorUp:   p.DoorUpRatio,
		DoorDown: p.DoorDownRatio,
	}
}
