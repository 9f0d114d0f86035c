// Package camera holds the free-fly camera driven by keyboard and mouse input
// and exposes the values the fractal shader receives as uniforms.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pi is the approximation used for degree conversion and the animation clock.
const Pi = 3.141

// PitchLimit keeps the camera from flipping over the vertical axis.
const PitchLimit = 89.0

var worldUp = mgl32.Vec3{0, 1, 0}

// Radians converts degrees using Pi.
func Radians(deg float32) float32 {
	return deg * (Pi / 180.0)
}

// AnimationTime maps a frame index onto the scene clock so that maxFrames
// frames cover one full period of the animated power.
func AnimationTime(frame, maxFrames int) float32 {
	if maxFrames <= 0 {
		return 0
	}
	return float32(frame) / float32(maxFrames) * Pi * 2.0 / 0.132
}

// Mouse is the cursor position and accumulated scroll passed as u_mouse.
type Mouse struct {
	X, Y   float32
	Scroll float32
}

// State is the camera and input state of one render session.
type State struct {
	Position    mgl32.Vec3
	Forward     mgl32.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32
	ZoomSpeed   float32
	Speed       float32
	SpeedChange float32
	Sensitivity float32
	Mouse       Mouse

	lastX, lastY float32
	seenCursor   bool
}

// New returns the camera at its starting pose: two units behind the origin
// looking down +Z.
func New() *State {
	return &State{
		Position:    mgl32.Vec3{0, 0, -2},
		Forward:     mgl32.Vec3{0, 0, 1},
		Yaw:         -90,
		Pitch:       0,
		FOV:         60,
		ZoomSpeed:   0.5,
		Speed:       0.03,
		SpeedChange: 0.0001,
		Sensitivity: 0.3,
	}
}

// HandleCursor applies a cursor move. The first event only anchors the
// delta; yaw and pitch are unchanged but Forward is recomputed from them.
func (s *State) HandleCursor(x, y float64) {
	fx, fy := float32(x), float32(y)
	s.Mouse.X, s.Mouse.Y = fx, fy

	if !s.seenCursor {
		s.lastX, s.lastY = fx, fy
		s.seenCursor = true
	}

	dx := (fx - s.lastX) * s.Sensitivity
	dy := (s.lastY - fy) * s.Sensitivity
	s.lastX, s.lastY = fx, fy

	s.Yaw -= dx
	s.Pitch -= dy
	s.Pitch = mgl32.Clamp(s.Pitch, -PitchLimit, PitchLimit)

	s.Forward = Direction(s.Yaw, s.Pitch)
}

// Direction returns the unit view vector for yaw and pitch in degrees.
func Direction(yaw, pitch float32) mgl32.Vec3 {
	y := float64(Radians(yaw))
	p := float64(Radians(pitch))
	return mgl32.Vec3{
		float32(math.Cos(p) * math.Sin(y)),
		float32(math.Sin(p)),
		float32(math.Cos(p) * math.Cos(y)),
	}.Normalize()
}

// HandleScroll accumulates vertical scroll, never below zero.
func (s *State) HandleScroll(dy float64) {
	s.Mouse.Scroll = float32(math.Max(float64(s.Mouse.Scroll)+dy, 0))
}

// Right returns the strafe axis, forward x world-up normalised.
func (s *State) Right() mgl32.Vec3 {
	return s.Forward.Cross(worldUp).Normalize()
}

// Apply moves the camera for every key held during this frame.
func (s *State) Apply(keys KeySet) {
	right := s.Right()

	if keys.Has(KeyS) {
		s.Position = s.Position.Add(s.Forward.Mul(s.Speed))
	}
	if keys.Has(KeyW) {
		s.Position = s.Position.Sub(s.Forward.Mul(s.Speed))
	}
	if keys.Has(KeyA) {
		s.Position = s.Position.Add(right.Mul(s.Speed))
	}
	if keys.Has(KeyD) {
		s.Position = s.Position.Sub(right.Mul(s.Speed))
	}
	if keys.Has(KeyE) {
		s.Position[1] += s.Speed
	}
	if keys.Has(KeyQ) {
		s.Position[1] -= s.Speed
	}
	if keys.Has(KeyZ) {
		s.FOV -= s.ZoomSpeed
	}
	if keys.Has(KeyX) {
		s.FOV += s.ZoomSpeed
	}
	if keys.Has(KeyR) {
		s.Speed += s.SpeedChange
	}
	if keys.Has(KeyF) {
		s.Speed -= s.SpeedChange
	}
}

// Uniforms are the per-frame shader inputs.
type Uniforms struct {
	Time       float32
	Mouse      mgl32.Vec3
	Resolution mgl32.Vec2
	CamPos     mgl32.Vec3
	CamDir     mgl32.Vec3
	FOV        float32
}

// Uniforms snapshots the state for a frame of width x height at time t.
func (s *State) Uniforms(width, height int, t float32) Uniforms {
	return Uniforms{
		Time:       t,
		Mouse:      mgl32.Vec3{s.Mouse.X, s.Mouse.Y, s.Mouse.Scroll},
		Resolution: mgl32.Vec2{float32(width), float32(height)},
		CamPos:     s.Position,
		CamDir:     s.Forward,
		FOV:        s.FOV,
	}
}
