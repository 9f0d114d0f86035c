// Package gldriver is the GLFW/OpenGL render driver. It draws a full-screen
// quad with a fragment shader, feeds keyboard and mouse input to the camera
// and reads every frame back with glReadPixels.
//
// The driver is compiled only with the "gl" build tag; without it Open
// returns ErrUnavailable so the rest of the program builds without cgo.
package gldriver

import (
	"errors"

	"github.com/user/mandelfly/pkg/camera"
	"github.com/user/mandelfly/pkg/ports"
)

// ErrUnavailable is returned by Open when the binary was built without the
// "gl" tag.
var ErrUnavailable = errors.New("gldriver: built without the gl tag")

// Options configures the window and shader program.
type Options struct {
	Width, Height int
	Title         string
	ShaderPath    string
	Hidden        bool // create an invisible window (offscreen capture)

	Camera *camera.State
	Logger ports.Logger
}

func (o *Options) defaults() {
	if o.Title == "" {
		o.Title = "mandelfly"
	}
	if o.Camera == nil {
		o.Camera = camera.New()
	}
}
