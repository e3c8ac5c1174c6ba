package common

import "github.com/go-gl/mathgl/mgl64"

type Vec3 = mgl64.Vec3
type Vec2 = mgl64.Vec2

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// V2 builds a vector on the z=0 plane.
func V2(x, y float64) Vec3 {
	return Vec3{x, y, 0}
}

func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}
