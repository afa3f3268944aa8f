package downloader

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/brogergvhs/se8/internal/providers"
)

// Progress receives page counts and byte totals while a chapter downloads.
type Progress interface {
	Update(done, total int, bytes int64)
	MarkDone()
	Abort()
}

type debugLogger interface {
	Debugf(string, ...any)
}

type Downloader struct {
	client     *http.Client
	log        debugLogger
	skipBroken bool
	attempts   int
	backoff    time.Duration
}

// New returns a Downloader; log receives retry notices and may be nil.
func New(c *http.Client, log debugLogger, skipBroken bool) *Downloader {
	return &Downloader{
		client:     c,
		log:        log,
		skipBroken: skipBroken,
		attempts:   3,
		backoff:    time.Second,
	}
}

type chapterState struct {
	mu         sync.Mutex
	doneImages int
	total      int
	doneBytes  int64
	files      []string
	errs       []error
}

func (cs *chapterState) finish(ph Progress, file string, err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err != nil {
		cs.errs = append(cs.errs, err)
	} else {
		cs.files = append(cs.files, file)
	}
	cs.doneImages++
	ph.Update(cs.doneImages, cs.total, cs.doneBytes)
}

func (cs *chapterState) addBytes(ph Progress, delta int64) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.doneBytes += delta
	ph.Update(cs.doneImages, cs.total, cs.doneBytes)
}

// DownloadPages saves every page into folder as page_NNN.<ext>, numbered
// by the page's position in pages. referer is sent with each image request.
func (d *Downloader) DownloadPages(
	ctx context.Context,
	pages []providers.Page,
	folder string,
	referer string,
	maxParallel int,
	ph Progress,
) ([]string, int64, error) {

	if err := os.MkdirAll(folder, 0755); err != nil {
		ph.Abort()
		return nil, 0, err
	}

	total := len(pages)
	cs := &chapterState{total: total, files: make([]string, 0, total)}
	ph.Update(0, total, 0)

	err := runPool(ctx, total, maxParallel, func(i int) {
		u := pages[i].URL
		target := filepath.Join(folder, fmt.Sprintf("page_%03d%s", i+1, imageExt(u)))

		var last int64
		progress := func(done int64) {
			delta := done - last
			if delta <= 0 {
				return
			}

			last = done
			cs.addBytes(ph, delta)
		}

		if err := d.downloadWithRetry(ctx, u, target, referer, progress); err != nil {
			cs.finish(ph, "", fmt.Errorf("page %d: %w", i+1, err))
			return
		}

		cs.finish(ph, target, nil)
	})

	if err != nil {
		ph.Abort()
		return cs.files, cs.doneBytes, err
	}

	if len(cs.errs) > 0 && !d.skipBroken {
		ph.Abort()
		return cs.files, cs.doneBytes, fmt.Errorf("failed %d/%d pages (use --skip-broken to continue): %w", len(cs.errs), total, cs.errs[0])
	}

	ph.MarkDone()
	return cs.files, cs.doneBytes, nil
}

func imageExt(raw string) string {
	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	}

	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif", ".avif":
		return ext
	default:
		return ".jpg"
	}
}

func (d *Downloader) downloadWithRetry(
	ctx context.Context,
	url string,
	output string,
	referer string,
	progress func(done int64),
) error {
	var err error
	for attempt := 1; attempt <= d.attempts; attempt++ {
		err = d.download(ctx, url, output, referer, progress)
		if err == nil {
			return nil
		}
		if attempt == d.attempts {
			break
		}
		if d.log != nil {
			d.log.Debugf("retry %d/%d %s: %v\n", attempt, d.attempts-1, url, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * d.backoff):
		}
	}

	return err
}

func (d *Downloader) download(
	ctx context.Context,
	u, output, referer string,
	progress func(done int64),
) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Referer", referer)
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, _ := mime.ParseMediaType(ct); !strings.HasPrefix(mt, "image/") {
			return fmt.Errorf("unexpected MIME: %s", ct)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}

	written, err := copyWithProgress(f, resp.Body, progress)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(output)
		return err
	}

	if progress != nil && resp.ContentLength > 0 && written < resp.ContentLength {
		progress(resp.ContentLength)
	}

	return nil
}

func copyWithProgress(dst io.Writer, src io.Reader, progress func(done int64)) (int64, error) {
	buf := make([]byte, 32*1024)
	var total int64
	for {
		nr, er := src.Read(buf)

		if nr > 0 {
			nw, ew := dst.Write(buf[0:nr])

			if nw > 0 {
				total += int64(nw)
				if progress != nil {
					progress(total)
				}
			}

			if ew != nil {
				return total, ew
			}

			if nr != nw {
				return total, io.ErrShortWrite
			}
		}

		if er != nil {
			if er == io.EOF {
				break
			}
			return total, er
		}
	}

	return total, nil
}
