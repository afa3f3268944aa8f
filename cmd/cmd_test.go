package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/brogergvhs/se8/internal/chapters"
	"github.com/brogergvhs/se8/internal/providers"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func TestComicInfo(t *testing.T) {
	t.Parallel()

	m := providers.Manga{
		Title:         "Series",
		Author:        "A, B",
		Description:   "desc",
		URL:           "https://se8.us/index.php/comic/1",
		Categories:    []string{"x", "y"},
		ContentRating: providers.RatingNsfw,
	}
	chs := chapters.Wrap(m.Title, []providers.Chapter{
		{ID: "5", Title: "Ch 1", Number: 2},
		{ID: "9", Title: "Ch 2", Number: 1},
	})

	first := comicInfo(m, chs[0], 3)
	assert.Equal(t, "1", first.Number)

	info := comicInfo(m, chs[1], 12)

	assert.Equal(t, "Series", info.Series)
	assert.Equal(t, "Ch 2", info.Title)
	assert.Equal(t, "2", info.Number)
	assert.Equal(t, "x, y", info.Genre)
	assert.Equal(t, 12, info.PageCount)
	assert.Equal(t, "Adults Only 18+", info.AgeRating)
}

func TestAgeRating(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Everyone", ageRating(providers.RatingSafe))
	assert.Equal(t, "Teen", ageRating(providers.RatingSuggestive))
	assert.Equal(t, "Adults Only 18+", ageRating(providers.RatingNsfw))
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := confirm(strings.NewReader(tt.in), &out, "Proceed?")
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Contains(t, out.String(), "Proceed? [y/N]")
	}
}

func TestPromptError(t *testing.T) {
	t.Parallel()

	err := promptError("标签", promptui.ErrInterrupt)
	assert.ErrorIs(t, err, promptui.ErrInterrupt)
	assert.Contains(t, err.Error(), "selection cancelled")

	ttyErr := errors.New("open /dev/tty: no such device")
	err = promptError("标签", ttyErr)
	assert.ErrorIs(t, err, ttyErr)
	assert.Contains(t, err.Error(), "prompt failed")
	assert.NotContains(t, err.Error(), "cancelled")
}
