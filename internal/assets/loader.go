package assets

import (
	"context"
	"os"
	"time"

	"deskfolio/internal/content"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultLoadTimeout bounds how long the whole model set may take before
// the scene falls back to placeholder geometry for the missing slots.
const DefaultLoadTimeout = 10 * time.Second

// statFile is swapped in tests to simulate unavailable or slow files.
var statFile = os.Stat

// ModelSpec names one desk item's model file.
type ModelSpec struct {
	Kind content.Kind
	Path string
}

// LoadSet loads the model set, bounded by the timeout. Only the file
// checks fan out across workers; the raylib model creation uploads mesh
// data to the GPU, so it runs sequentially on the calling thread, which
// must own the GL context. Slots whose file was missing, unreadable
// before the deadline, or not a valid model are simply absent from the
// result; the caller substitutes placeholder geometry per slot.
func LoadSet(specs []ModelSpec, timeout time.Duration, log *zap.Logger) map[content.Kind]rl.Model {
	if log == nil {
		log = zap.NewNop()
	}
	loaded := make(map[content.Kind]rl.Model, len(specs))
	if len(specs) == 0 {
		return loaded
	}
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}

	for _, spec := range verifyFiles(specs, timeout, log) {
		model := LoadModel(spec.Path)
		if !rl.IsModelValid(model) {
			log.Warn("invalid model data, slot falls back to placeholder",
				zap.String("kind", spec.Kind.String()),
				zap.String("path", spec.Path))
			continue
		}
		loaded[spec.Kind] = model
	}
	return loaded
}

// verifyFiles stats every spec's file concurrently and returns the ones
// readable before the deadline, in spec order. Workers abandoned by the
// deadline only ever touch the filesystem, never raylib, so letting
// them drain on their own is harmless.
func verifyFiles(specs []ModelSpec, timeout time.Duration, log *zap.Logger) []ModelSpec {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	results := make(chan int, len(specs))

	var g errgroup.Group
	for i, spec := range specs {
		g.Go(func() error {
			if _, err := statFile(spec.Path); err != nil {
				log.Warn("model file unavailable, slot falls back to placeholder",
					zap.String("kind", spec.Kind.String()),
					zap.String("path", spec.Path),
					zap.Error(err))
				return nil
			}
			results <- i
			return nil
		})
	}
	go func() {
		// Workers never return errors; Wait is only a join point.
		_ = g.Wait()
		close(results)
	}()

	ready := make([]bool, len(specs))
	count := 0
collect:
	for {
		select {
		case i, ok := <-results:
			if !ok {
				break collect
			}
			ready[i] = true
			count++
		case <-ctx.Done():
			log.Warn("model file checks timed out, using what finished",
				zap.Int("verified", count),
				zap.Int("requested", len(specs)))
			break collect
		}
	}

	verified := make([]ModelSpec, 0, count)
	for i, ok := range ready {
		if ok {
			verified = append(verified, specs[i])
		}
	}
	return verified
}
