// Package convert re-encodes a directory of saved bitmap frames into another
// still-image format.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/user/mandelfly/pkg/pipeline"
	"github.com/user/mandelfly/pkg/ports"
	"golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"
)

// ErrNoFrames is returned when the input directory holds no frame bitmaps.
var ErrNoFrames = errors.New("convert: no frame_<n>.bmp files found")

var framePattern = regexp.MustCompile(`^frame_(\d+)\.bmp$`)

// Stage converts frame_<n>.bmp files to frame_<n>.<ext>.
type Stage struct {
	fs      ports.FileSystem
	encoder ports.ImageEncoder
	logger  ports.Logger
	now     func() time.Time
}

// NewStage creates a new convert stage.
func NewStage(fs ports.FileSystem, encoder ports.ImageEncoder, logger ports.Logger) *Stage {
	return &Stage{
		fs:      fs,
		encoder: encoder,
		logger:  logger.WithComponent("convert"),
		now:     time.Now,
	}
}

type source struct {
	index int
	name  string
}

// Frames lists the frame bitmaps in dir ordered by frame index.
func Frames(fs ports.FileSystem, dir string) ([]int, []string, error) {
	names, err := fs.ListDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var found []source
	for _, name := range names {
		m := framePattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = append(found, source{index: n, name: name})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].index < found[j].index })

	indices := make([]int, len(found))
	paths := make([]string, len(found))
	for i, f := range found {
		indices[i] = f.index
		paths[i] = filepath.Join(dir, f.name)
	}
	return indices, paths, nil
}

// Execute converts every frame with at most input.Workers running at once.
// Per-frame failures are collected; only listing errors and cancellation
// fail the stage.
func (s *Stage) Execute(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error) {
	result := pipeline.ConvertResult{}
	start := s.now()

	indices, paths, err := Frames(s.fs, input.InputDir)
	if err != nil {
		return result, err
	}
	if len(paths) == 0 {
		return result, fmt.Errorf("%w in %s", ErrNoFrames, input.InputDir)
	}

	outDir := input.OutputDir
	if outDir == "" {
		outDir = input.InputDir
	}
	if err := s.fs.MkdirAll(outDir); err != nil {
		return result, fmt.Errorf("create %s: %w", outDir, err)
	}

	workers := input.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	s.logger.Info("Converting %d frames to %s with %d workers", len(paths), s.encoder.Extension(), workers)

	converted := make([]*pipeline.ConvertedFrame, len(paths))
	var (
		mu     sync.Mutex
		failed []pipeline.FailedFrame
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range paths {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			target := filepath.Join(outDir, fmt.Sprintf("frame_%d.%s", indices[i], s.encoder.Extension()))
			size, err := s.convertOne(paths[i], target)
			if err != nil {
				s.logger.Warn("Failed to convert %s: %v", paths[i], err)
				mu.Lock()
				failed = append(failed, pipeline.FailedFrame{Index: indices[i], Path: paths[i], Err: err})
				mu.Unlock()
				return nil
			}
			converted[i] = &pipeline.ConvertedFrame{Index: indices[i], Source: paths[i], Target: target, Size: size}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	for _, f := range converted {
		if f != nil {
			result.Frames = append(result.Frames, *f)
		}
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i].Index < failed[j].Index })
	result.Failed = failed
	result.Elapsed = s.now().Sub(start)

	s.logger.Info("Converted %d frames", len(result.Frames))
	return result, nil
}

func (s *Stage) convertOne(src, dst string) (int, error) {
	data, err := s.fs.ReadFile(src)
	if err != nil {
		return 0, err
	}
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	var out bytes.Buffer
	if err := s.encoder.Encode(&out, img); err != nil {
		return 0, fmt.Errorf("encode %s: %w", s.encoder.Extension(), err)
	}
	if err := s.fs.WriteFile(dst, out.Bytes()); err != nil {
		return 0, err
	}
	return out.Len(), nil
}
