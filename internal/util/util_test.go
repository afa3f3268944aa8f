package util

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	base := "https://se8.us/index.php"
	tests := map[string]string{
		"/index.php/chapter/5":      "https://se8.us/index.php/chapter/5",
		"https://img.se8.us/1.jpg":  "https://img.se8.us/1.jpg",
		"//img.se8.us/2.jpg":        "https://img.se8.us/2.jpg",
		"chapter/6":                 "https://se8.us/chapter/6",
	}

	for raw, want := range tests {
		assert.Equal(t, want, Resolve(base, raw), raw)
	}
}

func TestHuman(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", Human(512))
	assert.Equal(t, "1.50 KB", Human(1536))
	assert.Equal(t, "2.00 MB", Human(2<<20))
	assert.Equal(t, "1.00 GB", Human(1<<30))
}

func TestCreateCBZ(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var files []string
	for _, name := range []string{"page_002.jpg", "page_001.jpg"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0644))
		files = append(files, p)
	}

	out := filepath.Join(dir, "out.cbz")
	require.NoError(t, CreateCBZ(files, out, &ComicInfo{Series: "恋爱漫画", Number: "3", PageCount: 2}))

	r, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"ComicInfo.xml", "page_001.jpg", "page_002.jpg"}, names)

	rc, err := r.File[0].Open()
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	_ = rc.Close()

	assert.Contains(t, string(data), "<Series>恋爱漫画</Series>")
	assert.Contains(t, string(data), "<PageCount>2</PageCount>")
	assert.NotContains(t, string(data), "<Writer>")
}

func TestCleanupUnfinishedTempFolders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ch_1_tmp"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "keep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x_tmp"), nil, 0644))

	assert.Equal(t, 1, CleanupUnfinishedTempFolders(dir))
	assert.NoDirExists(t, filepath.Join(dir, "ch_1_tmp"))
	assert.DirExists(t, filepath.Join(dir, "keep"))
	assert.FileExists(t, filepath.Join(dir, "x_tmp"))

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.MkdirAll(empty, 0755))
	assert.True(t, RemoveIfEmpty(empty))
	assert.False(t, RemoveIfEmpty(dir))
}
