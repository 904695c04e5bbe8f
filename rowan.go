package rowan

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is the 3-component vector used for positions, offsets, and directions
// throughout the API.
type Vec3 = mgl64.Vec3

// VecZero is the zero vector, the identity element of vector addition.
var VecZero = Vec3{}

// VecOne is the unit vector with all components set to 1.
var VecOne = Vec3{1, 1, 1}

// EntityID identifies an entity in the external component store that owns a
// node. The zero value means "not bound".
type EntityID uint32
