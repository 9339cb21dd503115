package meshes

import (
	"errors"
	"fmt"
)

var ErrUnknownMesh = errors.New("unknown mesh kind")

// Kind identifies one of the built-in primitive meshes.
type Kind int

const (
	Plane Kind = iota
	Box
	Sphere
	Torus
	HalfTorus
	TaperedCylinder
)

// Kinds lists every primitive in declaration order.
func Kinds() []Kind {
	return []Kind{Plane, Box, Sphere, Torus, HalfTorus, TaperedCylinder}
}

func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	case Torus:
		return "torus"
	case HalfTorus:
		return "half_torus"
	case TaperedCylinder:
		return "tapered_cylinder"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Valid() bool {
	return k >= Plane && k <= TaperedCylinder
}
