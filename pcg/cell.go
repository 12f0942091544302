package pcg

// GroundType is the walkable surface assigned to a cell.
type GroundType uint8

const (
	Floor GroundType = iota
	Ice
	MovingPlatformH
	MovingPlatformV
	PlatformSide
	Piques
	DoorUp
	DoorDown
	Empty // passable void produced by erosion
)

// String returns the ground type name.
func (g GroundType) String() string {
	switch g {
	case Floor:
		return "Floor"
	case Ice:
		return "Ice"
	case MovingPlatformH:
		return "MovingPlatformH"
	case MovingPlatformV:
		return "MovingPlatformV"
	case PlatformSide:
		return "PlatformSide"
	case Piques:
		return "Piques"
	case DoorUp:
		return "DoorUp"
	case DoorDown:
		return "DoorDown"
	case Empty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// IsMovingPlatform reports whether g is the center of a moving platform.
func (g GroundType) IsMovingPlatform() bool {
	return g == MovingPlatformH || g == MovingPlatformV
}

// OverlayType marks special cells on top of their ground.
type OverlayType uint8

const (
	None OverlayType = iota
	Start
	End
	Star
)

// String returns the overlay type name.
func (o OverlayType) String() string {
	switch o {
	case None:
		return "None"
	case Start:
		return "Start"
	case End:
		return "End"
	case Star:
		return "Star"
	default:
		return "Unknown"
	}
}

// Cell represents a single cell in a level grid.
// Ground and Overlay are independent: a cell carries at most one of each.
type Cell struct {
	// IsEmpty is TRUE for a solid wall and FALSE for a carved, passable cell.
	// The inverted polarity is kept for compatibility with stored levels;
	// prefer Solid and Passable when reading it.
	IsEmpty bool
	Ground  GroundType  // Ground specifies the surface of a passable cell.
	Overlay OverlayType // Overlay specifies the start, end or star marker.
	IsEnd   bool        // IsEnd is set on the level exit only.
}

// Solid reports whether the cell is an unwalkable wall.
func (c Cell) Solid() bool {
	return c.IsEmpty
}

// Passable reports whether the cell has been carved.
func (c Cell) Passable() bool {
	return !c.IsEmpty
}

// Walkable reports whether the cell is passable and carries no overlay.
func (c Cell) Walkable() bool {
	return !c.IsEmpty && c.Overlay == None
}

// glyph returns the rune used by Grid.String.
func (c Cell) glyph() rune {
	if c.IsEmpty {
		return '#'
	}
	switch c.Overlay {
	case Start:
		return 'S'
	case End:
		return 'E'
	case Star:
		return '*'
	}
	switch c.Ground {
	case Ice:
		return '~'
	case MovingPlatformH:
		return '-'
	case MovingPlatformV:
		return '|'
	case PlatformSide:
		return '='
	case Piques:
		return '^'
	case DoorUp:
		return 'U'
	case DoorDown:
		return 'D'
	case Empty:
		return ' '
	default:
		return '.'
	}
}
