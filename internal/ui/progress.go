package ui

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/se8/internal/util"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressManager renders one bar per chapter being downloaded.
type ProgressManager struct {
	p *mpb.Progress
}

func NewProgressManager(out io.Writer) *ProgressManager {
	return &ProgressManager{p: mpb.New(
		mpb.WithWidth(40),
		mpb.WithOutput(out),
		mpb.WithRefreshRate(150*time.Millisecond),
	)}
}

// Close waits for every bar to finish rendering.
func (pm *ProgressManager) Close() {
	pm.p.Wait()
}

func (pm *ProgressManager) Register(name string) *ProgressHandle {
	h := &ProgressHandle{}

	h.bar = pm.p.New(0,
		mpb.BarStyle().Lbound("[").Rbound("]"),
		mpb.PrependDecorators(
			decor.OnAbort(
				decor.OnComplete(decor.Name(name, decor.WCSyncSpaceR), "✓ "+name),
				"✗ "+name,
			),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("%d/%d", decor.WCSyncWidth),
			decor.Any(func(decor.Statistics) string {
				return " " + util.Human(h.bytes.Load())
			}, decor.WCSyncSpace),
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
		),
	)

	return h
}

// ProgressHandle tracks pages and bytes for a chapter. Calls after
// MarkDone or Abort are ignored.
type ProgressHandle struct {
	bar *mpb.Bar

	total atomic.Int64
	bytes atomic.Int64
	final atomic.Bool
}

func (h *ProgressHandle) Update(done, total int, bytes int64) {
	if h.final.Load() {
		return
	}

	if total > 0 && int64(total) != h.total.Load() {
		h.total.Store(int64(total))
		h.bar.SetTotal(int64(total), false)
	}

	h.bytes.Store(bytes)
	h.bar.SetCurrent(int64(done))
}

func (h *ProgressHandle) MarkDone() {
	if h.final.Swap(true) {
		return
	}

	total := h.total.Load()
	h.bar.SetCurrent(total)
	h.bar.SetTotal(total, true)
}

// Abort stops the bar and keeps it on screen marked as failed.
func (h *ProgressHandle) Abort() {
	if h.final.Swap(true) {
		return
	}

	h.bar.Abort(false)
}
