package engine

import "github.com/go-gl/mathgl/mgl32"

// colorRef packs an RGB color in 0..1 into a Win32 COLORREF (0x00BBGGRR).
func colorRef(color mgl32.Vec3) uint32 {
	channel := func(v float32) uint32 {
		v = mgl32.Clamp(v, 0, 1)
		return uint32(v*255 + 0.5)
	}
	return channel(color.X()) | channel(color.Y())<<8 | channel(color.Z())<<16
}
