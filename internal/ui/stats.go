package ui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// Stats counts download results across chapter workers.
type Stats struct {
	Chapters atomic.Int64
	Images   atomic.Int64
	Bytes    atomic.Int64
	Failed   atomic.Int64

	started time.Time
}

func NewStats() *Stats {
	return &Stats{started: time.Now()}
}

// AddChapter records one finished chapter archive.
func (s *Stats) AddChapter(images int, bytes int64) {
	s.Chapters.Add(1)
	s.Images.Add(int64(images))
	s.Bytes.Add(bytes)
}

func (s *Stats) Summary(w io.Writer, human func(int64) string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Download Summary:")
	fmt.Fprintf(w, "Chapters: %d\n", s.Chapters.Load())
	fmt.Fprintf(w, "Images:   %d\n", s.Images.Load())
	fmt.Fprintf(w, "Data:     %s\n", human(s.Bytes.Load()))
	if n := s.Failed.Load(); n > 0 {
		fmt.Fprintf(w, "Failed:   %d\n", n)
	}
	if !s.started.IsZero() {
		fmt.Fprintf(w, "Time:     %s\n", time.Since(s.started).Round(time.Second))
	}
}
