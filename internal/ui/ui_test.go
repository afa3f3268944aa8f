package ui

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	l := &Logger{Out: &buf}

	l.Debugf("hidden %d\n", 1)
	l.Infof("hello %s\n", "world")
	l.Warnf("careful\n")
	l.Errorf("broken\n")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "broken")

	buf.Reset()
	l.Debug = true
	l.Debugf("shown\n")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrintTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := PrintTable(&buf, []string{"ID", "Title"}, [][]string{
		{"1001", "第一部"},
		{"2002", "第二部"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1001")
	assert.Contains(t, out, "第二部")
}

func TestProgressHandle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pm := NewProgressManager(&buf)

	h := pm.Register("Ch.1")
	h.Update(0, 3, 0)
	h.Update(3, 3, 2048)
	h.MarkDone()
	h.MarkDone()
	h.Update(1, 1, 1)

	pm.Close()
	assert.Equal(t, int64(3), h.total.Load())
	assert.Equal(t, int64(2048), h.bytes.Load())
}

func TestStatsSummary(t *testing.T) {
	t.Parallel()

	s := NewStats()
	s.AddChapter(10, 2048)
	s.AddChapter(5, 1024)
	s.Failed.Add(1)

	var buf bytes.Buffer
	s.Summary(&buf, func(n int64) string { return fmt.Sprintf("%dB", n) })

	out := buf.String()
	assert.Contains(t, out, "Chapters: 2")
	assert.Contains(t, out, "Images:   15")
	assert.Contains(t, out, "Data:     3072B")
	assert.Contains(t, out, "Failed:   1")
	assert.Contains(t, out, "Time:")
}
