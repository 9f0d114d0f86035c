package gldriver

import "testing"

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	opts.defaults()
	if opts.Title != "mandelfly" {
		t.Errorf("unexpected title %q", opts.Title)
	}
	if opts.Camera == nil || opts.Camera.FOV != 60 {
		t.Error("expected a default camera")
	}
}
