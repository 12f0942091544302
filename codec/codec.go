// Package codec provides the canonical binary form of a generated level.
//
// A level is written as a protobuf-wire message: dimensions, the seed that
// produced it, a row-major cell payload of (isEmpty, ground, overlay) triples
// and the parameters used. Storing the seed and parameters is enough to
// replay a level; the cell payload lets tests and caches compare grids
// without regenerating them.
package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-pcg/pcg"
	"google.golang.org/protobuf/encoding/protowire"
)

const bytesPerCell = 3

// Level field numbers.
const (
	levelWidth  protowire.Number = 1
	levelHeight protowire.Number = 2
	levelSeed   protowire.Number = 3
	levelCells  protowire.Number = 4
	levelParams protowire.Number = 5
)

// Parameters field numbers.
const (
	paramWidth protowire.Number = iota + 1
	paramHeight
	paramSeed
	paramIce
	paramPiques
	paramDoorUp
	paramDoorDown
	paramLoopChance
	paramMaxLoops
	paramStarCount
	paramMinStarDistance
	paramMovingPlatformRatio
	paramRandomEnd
	paramEndX
	paramEndY
	paramEndMaxHeightPercent
	paramErosion
)

const erosionRatio protowire.Number = 1

var ErrMalformed = errors.New("malformed level payload")

// Level is a decoded level.
type Level struct {
	Grid   *pcg.Grid
	Seed   int
	Params pcg.Parameters
}

// Marshal encodes grid, the seed that produced it and the parameters.
func Marshal(grid *pcg.Grid, seed int, params pcg.Parameters) []byte {
	var b []byte
	b = appendVarint(b, levelWidth, uint64(grid.Width()))
	b = appendVarint(b, levelHeight, uint64(grid.Height()))
	b = appendVarint(b, levelSeed, protowire.EncodeZigZag(int64(seed)))
	b = protowire.AppendTag(b, levelCells, protowire.BytesType)
	b = protowire.AppendBytes(b, marshalCells(grid))
	b = protowire.AppendTag(b, levelParams, protowire.BytesType)
	b = protowire.AppendBytes(b, marshalParams(params))
	return b
}

// MarshalResult encodes a generation result with its parameters.
func MarshalResult(res pcg.Result, params pcg.Parameters) []byte {
	return Marshal(res.Grid, res.Seed, params)
}

func marshalCells(grid *pcg.Grid) []byte {
	cells := make([]byte, 0, grid.Len()*bytesPerCell)
	for i := range grid.Len() {
		c := grid.At(grid.PositionOf(i))
		var empty byte
		if c.IsEmpty {
			empty = 1
		}
		cells = append(cells, empty, byte(c.Ground), byte(c.Overlay))
	}
	return cells
}

// MarshalParams encodes the parameters alone. Equal parameter values always
// encode to equal bytes, which makes the output usable as a cache key.
func MarshalParams(p pcg.Parameters) []byte {
	return marshalParams(p)
}

func marshalParams(p pcg.Parameters) []byte {
	var b []byte
	b = appendVarint(b, paramWidth, uint64(max(p.Width, 0)))
	b = appendVarint(b, paramHeight, uint64(max(p.Height, 0)))
	b = appendVarint(b, paramSeed, protowire.EncodeZigZag(int64(p.Seed)))
	b = appendFloat(b, paramIce, p.IceRatio)
	b = appendFloat(b, paramPiques, p.PiquesRatio)
	b = appendFloat(b, paramDoorUp, p.DoorUpRatio)
	b = appendFloat(b, paramDoorDown, p.DoorDownRatio)
	b = appendFloat(b, paramLoopChance, p.LoopChance)
	b = appendVarint(b, paramMaxLoops, protowire.EncodeZigZag(int64(p.MaxLoops)))
	b = appendVarint(b, paramStarCount, protowire.EncodeZigZag(int64(p.StarCount)))
	b = appendFloat(b, paramMinStarDistance, p.MinStarDistance)
	b = appendFloat(b, paramMovingPlatformRatio, p.MovingPlatformRatio)
	b = appendVarint(b, paramRandomEnd, protowire.EncodeBool(p.RandomEnd))
	b = appendVarint(b, paramEndX, protowire.EncodeZigZag(int64(p.EndPosition.X)))
	b = appendVarint(b, paramEndY, protowire.EncodeZigZag(int64(p.EndPosition.Y)))
	b = appendFloat(b, paramEndMaxHeightPercent, p.EndMaxHeightPercent)
	if p.Erosion != nil {
		b = protowire.AppendTag(b, paramErosion, protowire.BytesType)
		b = protowire.AppendBytes(b, appendFloat(nil, erosionRatio, p.Erosion.Ratio))
	}
	return b
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendFloat(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

// field is one decoded wire field. Only the member matching typ is set.
type field struct {
	num   protowire.Number
	typ   protowire.Type
	u64   uint64
	bytes []byte
}

// walk calls fn for each field in b, skipping groups and fixed32 values.
func walk(b []byte, fn func(field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.u64, n = protowire.ConsumeVarint(b)
		case protowire.Fixed64Type:
			f.u64, n = protowire.ConsumeFixed64(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// expect reports a wire type mismatch for a known field.
func expect(f field, typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("%w: field %d has wire type %d, want %d", ErrMalformed, f.num, f.typ, typ)
	}
	return nil
}

// Unmarshal decodes a level produced by Marshal.
func Unmarshal(b []byte) (*Level, error) {
	var (
		width, height int
		seed          int
		cells         []byte
		params        pcg.Parameters
		seenCells     bool
	)

	err := walk(b, func(f field) error {
		switch f.num {
		case levelWidth:
			width = int(f.u64)
			return expect(f, protowire.VarintType)
		case levelHeight:
			height = int(f.u64)
			return expect(f, protowire.VarintType)
		case levelSeed:
			seed = int(protowire.DecodeZigZag(f.u64))
			return expect(f, protowire.VarintType)
		case levelCells:
			cells, seenCells = f.bytes, true
			return expect(f, protowire.BytesType)
		case levelParams:
			if err := expect(f, protowire.BytesType); err != nil {
				return err
			}
			var err error
			params, err = unmarshalParams(f.bytes)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if width < pcg.MinDimension || width > pcg.MaxDimension || height < pcg.MinDimension || height > pcg.MaxDimension {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformed, width, height)
	}
	if !seenCells || len(cells) != width*height*bytesPerCell {
		return nil, fmt.Errorf("%w: cell payload has %d bytes, want %d", ErrMalformed, len(cells), width*height*bytesPerCell)
	}

	grid := pcg.NewGrid(width, height)
	for i := range grid.Len() {
		raw := cells[i*bytesPerCell : (i+1)*bytesPerCell]
		if raw[0] > 1 || pcg.GroundType(raw[1]) > pcg.Empty || pcg.OverlayType(raw[2]) > pcg.Star {
			return nil, fmt.Errorf("%w: cell %d is %v", ErrMalformed, i, raw)
		}
		overlay := pcg.OverlayType(raw[2])
		grid.Set(grid.PositionOf(i), pcg.Cell{
			IsEmpty: raw[0] == 1,
			Ground:  pcg.GroundType(raw[1]),
			Overlay: overlay,
			IsEnd:   overlay == pcg.End,
		})
	}

	return &Level{Grid: grid, Seed: seed, Params: params}, nil
}

func unmarshalParams(b []byte) (pcg.Parameters, error) {
	var p pcg.Parameters
	err := walk(b, func(f field) error {
		switch f.num {
		case paramWidth:
			p.Width = int(f.u64)
		case paramHeight:
			p.Height = int(f.u64)
		case paramSeed:
			p.Seed = int(protowire.DecodeZigZag(f.u64))
		case paramIce:
			p.IceRatio = math.Float64frombits(f.u64)
		case paramPiques:
			p.PiquesRatio = math.Float64frombits(f.u64)
		case paramDoorUp:
			p.DoorUpRatio = math.Float64frombits(f.u64)
		case paramDoorDown:
			p.DoorDownRatio = math.Float64frombits(f.u64)
		case paramLoopChance:
			p.LoopChance = math.Float64frombits(f.u64)
		case paramMaxLoops:
			p.MaxLoops = int(protowire.DecodeZigZag(f.u64))
		case paramStarCount:
			p.StarCount = int(protowire.DecodeZigZag(f.u64))
		case paramMinStarDistance:
			p.MinStarDistance = math.Float64frombits(f.u64)
		case paramMovingPlatformRatio:
			p.MovingPlatformRatio = math.Float64frombits(f.u64)
		case paramRandomEnd:
			p.RandomEnd = protowire.DecodeBool(f.u64)
		case paramEndX:
			p.EndPosition.X = int(protowire.DecodeZigZag(f.u64))
		case paramEndY:
			p.EndPosition.Y = int(protowire.DecodeZigZag(f.u64))
		case paramEndMaxHeightPercent:
			p.EndMaxHeightPercent = math.Float64frombits(f.u64)
		case paramErosion:
			if err := expect(f, protowire.BytesType); err != nil {
				return err
			}
			erosion := &pcg.ErosionParams{}
			if err := walk(f.bytes, func(ef field) error {
				if ef.num == erosionRatio {
					erosion.Ratio = math.Float64frombits(ef.u64)
					return expect(ef, protowire.Fixed64Type)
				}
				return nil
			}); err != nil {
				return err
			}
			p.Erosion = erosion
			return nil
		default:
			return nil
		}
		return expect(f, wireTypeOf(f.num))
	})
	return p, err
}

// wireTypeOf returns the wire type of a scalar parameter field.
func wireTypeOf(num protowire.Number) protowire.Type {
	switch num {
	case paramIce, paramPiques, paramDoorUp, paramDoorDown, paramLoopChance,
		paramMinStarDistance, paramMovingPlatformRatio, paramEndMaxHeightPercent:
		return protowire.Fixed64Type
	default:
		return protowire.VarintType
	}
}
