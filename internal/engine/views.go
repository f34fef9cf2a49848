package engine

import (
	"RoomViewer/internal/camera"
	"RoomViewer/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ViewSwitch flips between the free camera and the fixed overview. The
// overview keeps the field of view the free camera started with.
type ViewSwitch struct {
	Free        *camera.Camera
	Overview    *camera.LookAtCamera
	overview    bool
	overviewFov float32
	onChange    func(overview bool)
}

func NewViewSwitch(free *camera.Camera, overview *camera.LookAtCamera) *ViewSwitch {
	return &ViewSwitch{Free: free, Overview: overview, overviewFov: free.Zoom}
}

// OnChange registers fn to run after every toggle.
func (v *ViewSwitch) OnChange(fn func(overview bool)) {
	v.onChange = fn
}

func (v *ViewSwitch) Toggle() {
	v.overview = !v.overview
	logger.Log.Info("View toggled", zap.Bool("overview", v.overview))
	if v.onChange != nil {
		v.onChange(v.overview)
	}
}

// OverviewActive reports whether the fixed overview is on screen.
func (v *ViewSwitch) OverviewActive() bool {
	return v.overview
}

func (v *ViewSwitch) Current() camera.Viewpoint {
	if v.overview {
		return v.Overview
	}
	return v.Free
}

func (v *ViewSwitch) Projection(aspectRatio float32) mgl32.Mat4 {
	if v.overview {
		return mgl32.Perspective(mgl32.DegToRad(v.overviewFov), aspectRatio, v.Free.Near, v.Free.Far)
	}
	return v.Free.GetProjectionMatrix(aspectRatio)
}
