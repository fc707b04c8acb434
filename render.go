package photoframe

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
)

// ErrSuperseded is returned by Renderer.Render when a newer render started first.
var ErrSuperseded = errors.New("render superseded by a newer request")

// Renderer re-renders one source image for interactive editing.
// Only the most recent Render call delivers a result.
type Renderer struct {
	src     image.Image
	gen     atomic.Uint64
	process func(img image.Image, r Recipe) (*image.NRGBA, error)
}

// NewRenderer creates a Renderer over src. src must not be modified while in use.
func NewRenderer(src image.Image) *Renderer {
	return &Renderer{src: src, process: Process}
}

type renderResult struct {
	img *image.NRGBA
	err error
}

// Render processes the source with r. The work itself is not interrupted: a stale
// result is discarded with ErrSuperseded, and ctx cancellation returns ctx.Err().
func (rd *Renderer) Render(ctx context.Context, r Recipe) (*image.NRGBA, error) {
	id := rd.gen.Add(1)

	done := make(chan renderResult, 1)
	go func() {
		img, err := rd.process(rd.src, r)
		done <- renderResult{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if rd.gen.Load() != id {
			return nil, ErrSuperseded
		}
		return res.img, res.err
	}
}
