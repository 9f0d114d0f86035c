//go:build gl

package gldriver

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/user/mandelfly/pkg/adapters/logger"
	"github.com/user/mandelfly/pkg/camera"
	"github.com/user/mandelfly/pkg/pixbuf"
	"github.com/user/mandelfly/pkg/ports"
	"github.com/user/mandelfly/pkg/shader"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

var quad = []float32{
	-1, -1,
	1, -1,
	1, 1,

	1, 1,
	-1, 1,
	-1, -1,
}

var keyMap = map[glfw.Key]camera.Key{
	glfw.KeyW:      camera.KeyW,
	glfw.KeyA:      camera.KeyA,
	glfw.KeyS:      camera.KeyS,
	glfw.KeyD:      camera.KeyD,
	glfw.KeyE:      camera.KeyE,
	glfw.KeyQ:      camera.KeyQ,
	glfw.KeyZ:      camera.KeyZ,
	glfw.KeyX:      camera.KeyX,
	glfw.KeyR:      camera.KeyR,
	glfw.KeyF:      camera.KeyF,
	glfw.KeyEscape: camera.KeyEscape,
}

type uniforms struct {
	time, mouse, resolution, campos, camdir, fov int32
}

// Driver owns the window, the GL program and the camera.
type Driver struct {
	opts    Options
	window  *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32
	loc     uniforms
	cam     *camera.State
	logger  ports.Logger
}

// Open creates a Driver.
func Open(opts Options) (ports.FrameSource, error) {
	return New(opts)
}

// New initialises GLFW, opens the window and builds the shader program.
func New(opts Options) (*Driver, error) {
	opts.defaults()
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}
	d := &Driver{opts: opts, cam: opts.Camera, logger: log.WithComponent("gl")}

	src, err := shader.Load(opts.ShaderPath)
	if err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opts.ShaderPath, err)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	d.logger.Debug("Opening %dx%d window", opts.Width, opts.Height)
	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	d.window = win
	win.MakeContextCurrent()
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		d.cam.HandleCursor(x, y)
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, dy float64) {
		d.cam.HandleScroll(dy)
	})

	if err := gl.Init(); err != nil {
		d.Close()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	d.logger.Debug("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
	gl.Viewport(0, 0, int32(opts.Width), int32(opts.Height))

	d.logger.Debug("Compiling shader %s", opts.ShaderPath)
	program, err := buildProgram(src)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.program = program
	gl.UseProgram(program)

	d.setupQuad()
	d.loc = uniforms{
		time:       uniformLocation(program, "u_time"),
		mouse:      uniformLocation(program, "u_mouse"),
		resolution: uniformLocation(program, "u_resolution"),
		campos:     uniformLocation(program, "u_campos"),
		camdir:     uniformLocation(program, "u_camdir"),
		fov:        uniformLocation(program, "u_fov"),
	}
	return d, nil
}

func (d *Driver) setupQuad() {
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
}

// heldKeys polls the keys the camera reacts to.
func (d *Driver) heldKeys() camera.KeySet {
	var keys camera.KeySet
	for glfwKey, key := range keyMap {
		if d.window.GetKey(glfwKey) == glfw.Press {
			keys = keys.With(key)
		}
	}
	return keys
}

// Render processes input, draws the quad and reads the framebuffer back.
func (d *Driver) Render(ctx context.Context, req ports.FrameRequest) (*pixbuf.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Width != d.opts.Width || req.Height != d.opts.Height {
		return nil, fmt.Errorf("%w: frame %dx%d does not match window %dx%d",
			pixbuf.ErrMalformed, req.Width, req.Height, d.opts.Width, d.opts.Height)
	}

	keys := d.heldKeys()
	if keys.Has(camera.KeyEscape) {
		d.window.SetShouldClose(true)
	}
	d.cam.Apply(keys)

	u := d.cam.Uniforms(req.Width, req.Height, req.Time)
	gl.Uniform1f(d.loc.time, u.Time)
	gl.Uniform3f(d.loc.mouse, u.Mouse[0], u.Mouse[1], u.Mouse[2])
	gl.Uniform2f(d.loc.resolution, u.Resolution[0], u.Resolution[1])
	gl.Uniform3f(d.loc.campos, u.CamPos[0], u.CamPos[1], u.CamPos[2])
	gl.Uniform3f(d.loc.camdir, u.CamDir[0], u.CamDir[1], u.CamDir[2])
	gl.Uniform1f(d.loc.fov, u.FOV)
	d.logger.Debug("FOV: %.2f Camera Speed: %.4f", u.FOV, d.cam.Speed)

	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quad)/2))

	buf := pixbuf.New(req.Width, req.Height)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(req.Width), int32(req.Height), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(buf.Pix))

	d.window.SwapBuffers()
	glfw.PollEvents()
	return buf, nil
}

// ShouldClose reports whether the window was closed or escape was pressed.
func (d *Driver) ShouldClose() bool {
	return d.window == nil || d.window.ShouldClose()
}

// Close deletes the GL objects and terminates GLFW.
func (d *Driver) Close() error {
	if d.window == nil {
		return nil
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
		gl.DeleteBuffers(1, &d.vbo)
		gl.DeleteVertexArrays(1, &d.vao)
	}
	d.window.Destroy()
	d.window = nil
	glfw.Terminate()
	return nil
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func buildProgram(src shader.Source) (uint32, error) {
	vs, err := compile(gl.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := compile(gl.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	gl.ValidateProgram(program)
	return program, nil
}

func compile(kind uint32, source string) (uint32, error) {
	id := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(id, length, nil, gl.Str(log))
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return id, nil
}

var _ ports.FrameSource = (*Driver)(nil)
