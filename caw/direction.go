package caw

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction tags a template sub-list. The numeric order is the on-disk order
// and the order both extraction passes walk.
type Direction uint8

const (
	PlusX Direction = iota
	PlusY
	PlusZ
	MinusX
	MinusY
	MinusZ
	Remain
)

// DirectionCount is the number of sub-lists in a template, REMAIN included.
const DirectionCount = 7

var directionNames = [DirectionCount]string{"+X", "+Y", "+Z", "-X", "-Y", "-Z", "REMAIN"}

func (d Direction) String() string {
	if int(d) < DirectionCount {
		return directionNames[d]
	}
	return "Direction(?)"
}

// faceRule is one row of the dispatch table shared by the count and write
// passes. REMAIN has no neighbour and is never culled.
type faceRule struct {
	dir   Direction
	delta Coord
	culls bool
}

var faces = [DirectionCount]faceRule{
	{PlusX, Coord{1, 0, 0}, true},
	{PlusY, Coord{0, 1, 0}, true},
	{PlusZ, Coord{0, 0, 1}, true},
	{MinusX, Coord{-1, 0, 0}, true},
	{MinusY, Coord{0, -1, 0}, true},
	{MinusZ, Coord{0, 0, -1}, true},
	{Remain, Coord{}, false},
}

// Normal returns the unit neighbour offset of a face direction, zero for
// REMAIN and unknown directions.
func (d Direction) Normal() Coord {
	if int(d) >= DirectionCount {
		return Coord{}
	}
	return faces[d].delta
}

// DirectionSet is a bit set of directions.
type DirectionSet uint8

// NewDirectionSet builds a set from the given directions.
func NewDirectionSet(ds ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range ds {
		s |= 1 << d
	}
	return s
}

// AllDirections has every direction, REMAIN included.
const AllDirections DirectionSet = 1<<DirectionCount - 1

func (s DirectionSet) Has(d Direction) bool { return s&(1<<d) != 0 }

func (s DirectionSet) String() string {
	var parts []string
	for d := Direction(0); d < DirectionCount; d++ {
		if s.Has(d) {
			parts = append(parts, d.String())
		}
	}
	return strings.Join(parts, ",")
}

// ParseDirectionSet parses a comma separated list such as "+x,-y,-z".
// Names are case-insensitive; "remain" is accepted. An empty string is the
// empty set.
func ParseDirectionSet(s string) (DirectionSet, error) {
	var set DirectionSet
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		found := false
		for d, name := range directionNames {
			if tok == name {
				set |= 1 << Direction(d)
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Wrapf(ErrConfiguration, "unknown direction %q", tok)
		}
	}
	return set, nil
}
