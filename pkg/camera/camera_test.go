package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-3

func near(a, b mgl32.Vec3) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestNew_Defaults(t *testing.T) {
	s := New()
	if !s.Position.ApproxEqual(mgl32.Vec3{0, 0, -2}) {
		t.Errorf("unexpected start position %v", s.Position)
	}
	if !s.Forward.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
		t.Errorf("unexpected start forward %v", s.Forward)
	}
	if s.FOV != 60 || s.Yaw != -90 || s.Pitch != 0 {
		t.Errorf("unexpected angles fov=%v yaw=%v pitch=%v", s.FOV, s.Yaw, s.Pitch)
	}
}

func TestApply_Movement(t *testing.T) {
	tests := []struct {
		name string
		keys KeySet
		want mgl32.Vec3
	}{
		{"S moves along forward", Keys(KeyS), mgl32.Vec3{0, 0, -1.97}},
		{"W moves against forward", Keys(KeyW), mgl32.Vec3{0, 0, -2.03}},
		{"A moves along right", Keys(KeyA), mgl32.Vec3{-0.03, 0, -2}},
		{"D moves against right", Keys(KeyD), mgl32.Vec3{0.03, 0, -2}},
		{"E moves up", Keys(KeyE), mgl32.Vec3{0, 0.03, -2}},
		{"Q moves down", Keys(KeyQ), mgl32.Vec3{0, -0.03, -2}},
		{"opposite keys cancel", Keys(KeyW, KeyS), mgl32.Vec3{0, 0, -2}},
		{"no keys", 0, mgl32.Vec3{0, 0, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Apply(tt.keys)
			if !near(s.Position, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, s.Position)
			}
		})
	}
}

func TestApply_ZoomAndSpeed(t *testing.T) {
	s := New()
	s.Apply(Keys(KeyZ, KeyR))
	if s.FOV != 59.5 {
		t.Errorf("expected fov 59.5, got %v", s.FOV)
	}
	if mgl32.Abs(s.Speed-0.0301) > 1e-6 {
		t.Errorf("expected speed 0.0301, got %v", s.Speed)
	}

	s.Apply(Keys(KeyX))
	s.Apply(Keys(KeyX))
	s.Apply(Keys(KeyF))
	if s.FOV != 60.5 {
		t.Errorf("expected fov 60.5, got %v", s.FOV)
	}
	if mgl32.Abs(s.Speed-0.03) > 1e-6 {
		t.Errorf("expected speed 0.03, got %v", s.Speed)
	}
}

func TestHandleCursor_FirstEventAnchors(t *testing.T) {
	s := New()
	s.HandleCursor(100, 200)

	if s.Yaw != -90 || s.Pitch != 0 {
		t.Errorf("first event must not turn the camera: yaw=%v pitch=%v", s.Yaw, s.Pitch)
	}
	if s.Mouse.X != 100 || s.Mouse.Y != 200 {
		t.Errorf("expected mouse (100,200), got %+v", s.Mouse)
	}
	if !near(s.Forward, mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("expected forward recomputed from yaw -90, got %v", s.Forward)
	}
}

func TestHandleCursor_Turn(t *testing.T) {
	s := New()
	s.HandleCursor(100, 100)
	s.HandleCursor(110, 90)

	if !mgl32.FloatEqualThreshold(s.Yaw, -93, 1e-4) {
		t.Errorf("expected yaw -93, got %v", s.Yaw)
	}
	if !mgl32.FloatEqualThreshold(s.Pitch, -3, 1e-4) {
		t.Errorf("expected pitch -3, got %v", s.Pitch)
	}
	if !mgl32.FloatEqualThreshold(s.Forward.Len(), 1, 1e-5) {
		t.Errorf("expected unit forward, got length %v", s.Forward.Len())
	}
}

func TestHandleCursor_PitchClamp(t *testing.T) {
	s := New()
	s.HandleCursor(100, 100)

	s.HandleCursor(100, -1000)
	if s.Pitch != -PitchLimit {
		t.Errorf("expected pitch clamped to %v, got %v", -PitchLimit, s.Pitch)
	}

	s.HandleCursor(100, 2000)
	if s.Pitch != PitchLimit {
		t.Errorf("expected pitch clamped to %v, got %v", PitchLimit, s.Pitch)
	}
}

func TestHandleScroll(t *testing.T) {
	s := New()
	s.HandleScroll(2)
	if s.Mouse.Scroll != 2 {
		t.Errorf("expected scroll 2, got %v", s.Mouse.Scroll)
	}
	s.HandleScroll(-5)
	if s.Mouse.Scroll != 0 {
		t.Errorf("expected scroll floored at 0, got %v", s.Mouse.Scroll)
	}
	s.HandleScroll(1.5)
	if s.Mouse.Scroll != 1.5 {
		t.Errorf("expected scroll 1.5, got %v", s.Mouse.Scroll)
	}
}

func TestAnimationTime(t *testing.T) {
	if got := AnimationTime(0, 2000); got != 0 {
		t.Errorf("expected 0 at frame 0, got %v", got)
	}
	full := float32(Pi * 2 / 0.132)
	if got := AnimationTime(2000, 2000); !mgl32.FloatEqualThreshold(got, full, 1e-3) {
		t.Errorf("expected %v at the last frame, got %v", full, got)
	}
	if got := AnimationTime(1000, 2000); !mgl32.FloatEqualThreshold(got, full/2, 1e-3) {
		t.Errorf("expected %v half way, got %v", full/2, got)
	}
	if got := AnimationTime(5, 0); got != 0 {
		t.Errorf("expected 0 for zero frames, got %v", got)
	}
}

func TestUniforms(t *testing.T) {
	s := New()
	s.HandleScroll(3)
	u := s.Uniforms(1000, 800, 1.25)

	if u.Resolution != (mgl32.Vec2{1000, 800}) {
		t.Errorf("unexpected resolution %v", u.Resolution)
	}
	if u.Mouse[2] != 3 || u.Time != 1.25 || u.FOV != 60 {
		t.Errorf("unexpected uniforms %+v", u)
	}
	if u.CamPos != s.Position || u.CamDir != s.Forward {
		t.Error("expected camera position and direction to be copied")
	}
}

func TestKeySet(t *testing.T) {
	keys := Keys(KeyW, KeyEscape)
	if !keys.Has(KeyW) || !keys.Has(KeyEscape) || keys.Has(KeyS) {
		t.Errorf("unexpected key set %b", keys)
	}
	if !keys.With(KeyS).Has(KeyS) {
		t.Error("expected With to add a key")
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("s+a")
	if err != nil {
		t.Fatalf("ParseKeys failed: %v", err)
	}
	if keys != Keys(KeyS, KeyA) {
		t.Errorf("unexpected key set %b", keys)
	}
	if keys, _ := ParseKeys(""); keys != 0 {
		t.Errorf("expected empty set, got %b", keys)
	}
	if _, err := ParseKeys("SP"); err == nil {
		t.Error("expected error for unknown key")
	}
}
