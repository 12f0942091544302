// Package presets loads named level parameter sets from YAML.
package presets

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/beka-birhanu/vinom-pcg/pcg"
	"gopkg.in/yaml.v3"
)

var ErrPresetNotFound = errors.New("preset not found")

// rawPosition mirrors pcg.Position with optional fields.
type rawPosition struct {
	X *int `yaml:"x"`
	Y *int `yaml:"y"`
}

// rawParameters mirrors pcg.Parameters; nil fields inherit from the layer below.
type rawParameters struct {
	Width               *int         `yaml:"width"`
	Height              *int         `yaml:"height"`
	Seed                *int         `yaml:"seed"`
	IceRatio            *float64     `yaml:"ice_ratio"`
	PiquesRatio         *float64     `yaml:"piques_ratio"`
	DoorUpRatio         *float64     `yaml:"door_up_ratio"`
	DoorDownRatio       *float64     `yaml:"door_down_ratio"`
	LoopChance          *float64     `yaml:"loop_chance"`
	MaxLoops            *int         `yaml:"max_loops"`
	StarCount           *int         `yaml:"star_count"`
	MinStarDistance     *float64     `yaml:"min_star_distance"`
	MovingPlatformRatio *float64     `yaml:"moving_platform_ratio"`
	RandomEnd           *bool        `yaml:"random_end"`
	EndPosition         *rawPosition `yaml:"end_position"`
	EndMaxHeightPercent *float64     `yaml:"end_max_height_percent"`
	Erosion             *struct {
		Ratio *float64 `yaml:"ratio"`
	} `yaml:"erosion"`
}

// File is the on-disk layout: shared defaults and named presets layered on top.
type File struct {
	Defaults rawParameters            `yaml:"defaults"`
	Presets  map[string]rawParameters `yaml:"presets"`
}

// Loader reads a presets file and resolves named parameter sets.
type Loader struct {
	path string

	mu      sync.RWMutex
	resolve map[string]pcg.Parameters
}

// NewLoader creates a loader for the YAML file at path. Call Load before use.
func NewLoader(path string) *Loader {
	return &Loader{
		path:    path,
		resolve: make(map[string]pcg.Parameters),
	}
}

// Load (re)reads the presets file. A missing file yields no presets.
func (l *Loader) Load() error {
	var f File
	b, err := os.ReadFile(l.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read presets: %w", err)
	default:
		if err := yaml.Unmarshal(b, &f); err != nil {
			return fmt.Errorf("parse presets %s: %w", l.path, err)
		}
	}
	return l.set(f)
}

// Parse loads presets from raw YAML instead of the file.
func (l *Loader) Parse(b []byte) error {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse presets: %w", err)
	}
	return l.set(f)
}

func (l *Loader) set(f File) error {
	resolved := make(map[string]pcg.Parameters, len(f.Presets))
	var errs []error
	for name, raw := range f.Presets {
		p := merge(merge(pcg.DefaultParameters(), f.Defaults), raw)
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("preset %q: %w", name, err))
			continue
		}
		resolved[name] = p
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.resolve = resolved
	return nil
}

// Preset returns the resolved parameters for name.
func (l *Loader) Preset(name string) (pcg.Parameters, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.resolve[name]
	if !ok {
		return pcg.Parameters{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return p, nil
}

// Names returns the sorted preset names.
func (l *Loader) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.resolve))
	for name := range l.resolve {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// merge overrides fields of base with every non-nil field of raw.
func merge(base pcg.Parameters, raw rawParameters) pcg.Parameters {
	setInt(&base.Width, raw.Width)
	setInt(&base.Height, raw.Height)
	setInt(&base.Seed, raw.Seed)
	setFloat(&base.IceRatio, raw.IceRatio)
	setFloat(&base.PiquesRatio, raw.PiquesRatio)
	setFloat(&base.DoorUpRatio, raw.DoorUpRatio)
	setFloat(&base.DoorDownRatio, raw.DoorDownRatio)
	setFloat(&base.LoopChance, raw.LoopChance)
	setInt(&base.MaxLoops, raw.MaxLoops)
	setInt(&base.StarCount, raw.StarCount)
	setFloat(&base.MinStarDistance, raw.MinStarDistance)
	setFloat(&base.MovingPlatformRatio, raw.MovingPlatformRatio)
	if raw.RandomEnd != nil {
		base.RandomEnd = *raw.RandomEnd
	}
	if raw.EndPosition != nil {
		setInt(&base.EndPosition.X, raw.EndPosition.X)
		setInt(&base.EndPosition.Y, raw.EndPosition.Y)
	}
	setFloat(&base.EndMaxHeightPercent, raw.EndMaxHeightPercent)
	if raw.Erosion != nil {
		erosion := pcg.ErosionParams{}
		if base.Erosion != nil {
			erosion = *base.Erosion
		}
		setFloat(&erosion.Ratio, raw.Erosion.Ratio)
		base.Erosion = &erosion
	}
	return base
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
