// Package bulbsource is a CPU render driver: it sphere-traces a Mandelbulb
// from the free-fly camera and returns frames in framebuffer row order.
package bulbsource

import (
	"context"
	"errors"
	"math"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/user/mandelfly/pkg/camera"
	"github.com/user/mandelfly/pkg/pixbuf"
	"github.com/user/mandelfly/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by Render after Close.
var ErrClosed = errors.New("bulbsource: source closed")

// Options tunes the tracer.
type Options struct {
	Camera *camera.State

	// Autopilot is applied to the camera before every frame, as if the keys
	// were held down for the whole run.
	Autopilot camera.KeySet

	Workers    int // rows traced concurrently; <= 0 uses runtime.NumCPU()
	Iterations int // fractal iterations per distance estimate
	MaxSteps   int // sphere-tracing steps per ray
	Limit      int // ShouldClose after this many frames (0 = never)
}

// DefaultOptions returns a tracer tuned for previews of about 1000x1000.
func DefaultOptions() Options {
	return Options{
		Camera:     camera.New(),
		Iterations: 8,
		MaxSteps:   96,
	}
}

const (
	bailout  = 2.0
	maxDist  = 8.0
	hitEps   = 1e-3
	basePow  = 8.0
	powSwing = 2.0
	clockMul = 0.132
)

// Source renders the Mandelbulb on the CPU.
type Source struct {
	opts     Options
	rendered int
	closed   bool
}

// New creates a Source. A nil camera gets the default pose.
func New(opts Options) *Source {
	def := DefaultOptions()
	if opts.Camera == nil {
		opts.Camera = def.Camera
	}
	if opts.Iterations <= 0 {
		opts.Iterations = def.Iterations
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = def.MaxSteps
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Source{opts: opts}
}

// Camera returns the camera the source renders from.
func (s *Source) Camera() *camera.State {
	return s.opts.Camera
}

// Power returns the fractal exponent at animation time t. One clock period
// (t = 2*Pi/0.132) swings it once around 8.
func Power(t float32) float64 {
	return basePow + powSwing*math.Sin(float64(t)*clockMul)
}

// Render traces one frame. Row 0 of the result is the bottom scan line.
func (s *Source) Render(ctx context.Context, req ports.FrameRequest) (*pixbuf.Buffer, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, pixbuf.ErrMalformed
	}

	cam := s.opts.Camera
	cam.Apply(s.opts.Autopilot)
	u := cam.Uniforms(req.Width, req.Height, req.Time)

	v := newView(u)
	power := Power(req.Time)
	buf := pixbuf.New(req.Width, req.Height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for y := 0; y < req.Height; y++ {
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for x := 0; x < req.Width; x++ {
				r, gr, b := s.shade(v.ray(x, y), v.origin, power)
				buf.Set(x, y, r, gr, b)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.rendered++
	return buf, nil
}

// ShouldClose reports whether the frame limit has been reached or the
// source was closed.
func (s *Source) ShouldClose() bool {
	return s.closed || (s.opts.Limit > 0 && s.rendered >= s.opts.Limit)
}

// Close marks the source closed.
func (s *Source) Close() error {
	s.closed = true
	return nil
}

type view struct {
	origin        mgl64.Vec3
	forward       mgl64.Vec3
	right, up     mgl64.Vec3
	scale, aspect float64
	width, height float64
}

func newView(u camera.Uniforms) view {
	forward := vec64(u.CamDir).Normalize()
	right := forward.Cross(mgl64.Vec3{0, 1, 0}).Normalize()
	return view{
		origin:  vec64(u.CamPos),
		forward: forward,
		right:   right,
		up:      right.Cross(forward).Normalize(),
		scale:   math.Tan(float64(camera.Radians(u.FOV)) / 2),
		aspect:  float64(u.Resolution[0]) / float64(u.Resolution[1]),
		width:   float64(u.Resolution[0]),
		height:  float64(u.Resolution[1]),
	}
}

// ray returns the direction through pixel (x, y), y counted from the bottom.
func (v view) ray(x, y int) mgl64.Vec3 {
	px := ((float64(x)+0.5)/v.width*2 - 1) * v.aspect * v.scale
	py := ((float64(y)+0.5)/v.height*2 - 1) * v.scale
	return v.forward.Add(v.right.Mul(px)).Add(v.up.Mul(py)).Normalize()
}

func (s *Source) shade(dir, origin mgl64.Vec3, power float64) (uint8, uint8, uint8) {
	t := 0.0
	for i := 0; i < s.opts.MaxSteps; i++ {
		d := Distance(origin.Add(dir.Mul(t)), power, s.opts.Iterations)
		if d < hitEps {
			glow := 1 - float64(i)/float64(s.opts.MaxSteps)
			return channel(glow * 0.95), channel(glow * 0.65), channel(glow * 0.35)
		}
		t += d
		if t > maxDist {
			break
		}
	}
	// Background: faint vertical gradient along the ray's elevation.
	sky := 0.08 + 0.08*dir[1]
	return channel(sky * 0.6), channel(sky * 0.7), channel(sky)
}

// Distance is the Mandelbulb distance estimate at p.
func Distance(p mgl64.Vec3, power float64, iterations int) float64 {
	z := p
	dr := 1.0
	r := 0.0
	for i := 0; i < iterations; i++ {
		r = z.Len()
		if r > bailout {
			break
		}
		if r == 0 {
			return 0
		}
		theta := math.Acos(mgl64.Clamp(z[2]/r, -1, 1)) * power
		phi := math.Atan2(z[1], z[0]) * power
		zr := math.Pow(r, power)
		dr = math.Pow(r, power-1)*power*dr + 1
		z = mgl64.Vec3{
			math.Sin(theta) * math.Cos(phi),
			math.Sin(phi) * math.Sin(theta),
			math.Cos(theta),
		}.Mul(zr).Add(p)
	}
	if r == 0 {
		return 0
	}
	return 0.5 * math.Log(r) * r / dr
}

func channel(v float64) uint8 {
	return uint8(mgl64.Clamp(v, 0, 1)*255 + 0.5)
}

func vec64(v [3]float32) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

var _ ports.FrameSource = (*Source)(nil)
