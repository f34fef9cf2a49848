package engine

import "github.com/go-gl/mathgl/mgl32"

// colorRef packs an RGB colour in [0,1] into a Win32 COLORREF (0x00BBGGRR).
func colorRef(c mgl32.Vec3) uint32 {
	channel := func(v float32) uint32 {
		return uint32(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return channel(c.X()) | channel(c.Y())<<8 | channel(c.Z())<<16
}
