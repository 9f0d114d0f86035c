//go:build !gl

package gldriver

import "github.com/user/mandelfly/pkg/ports"

// Open always fails in builds without the gl tag.
func Open(opts Options) (ports.FrameSource, error) {
	return nil, ErrUnavailable
}
