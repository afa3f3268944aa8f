package se8

import (
	"testing"

	"github.com/brogergvhs/se8/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionTables(t *testing.T) {
	t.Parallel()

	wantTags := []string{
		"", "61", "63", "62", "64", "11", "15", "17", "29", "31", "67", "68", "69", "75", "78", "84",
		"86", "87", "91", "98", "106", "114",
	}
	wantProgress := []string{"", "1", "2"}
	wantSort := []string{"hits", "addtime"}

	for i, code := range wantTags {
		q, err := CompileFilters([]providers.Filter{providers.SelectFilter(TagGroupName, i)})
		require.NoError(t, err)
		assert.Equal(t, code, q.Tag, "tag index %d", i)
	}
	for i, code := range wantProgress {
		q, err := CompileFilters([]providers.Filter{providers.SelectFilter(ProgressGroupName, i)})
		require.NoError(t, err)
		assert.Equal(t, code, q.Status, "progress index %d", i)
	}
	for i, code := range wantSort {
		q, err := CompileFilters([]providers.Filter{providers.SortFilter(i)})
		require.NoError(t, err)
		assert.Equal(t, code, q.Sort, "sort index %d", i)
	}
}

func TestCompileFiltersOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter providers.Filter
	}{
		{"tag past end", providers.SelectFilter(TagGroupName, len(TagOptions.Options))},
		{"progress past end", providers.SelectFilter(ProgressGroupName, 3)},
		{"sort past end", providers.SortFilter(2)},
		{"negative tag", providers.SelectFilter(TagGroupName, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := CompileFilters([]providers.Filter{tt.filter})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFilterIndex)
		})
	}
}

func TestCompileFilters(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		q, err := CompileFilters(nil)
		require.NoError(t, err)
		assert.Equal(t, Query{Sort: "hits"}, q)
	})

	t.Run("last title wins", func(t *testing.T) {
		t.Parallel()

		q, err := CompileFilters([]providers.Filter{
			providers.TitleFilter("first"),
			providers.TitleFilter("second"),
		})
		require.NoError(t, err)
		assert.Equal(t, "second", q.Text)
	})

	t.Run("unknown group and kind ignored", func(t *testing.T) {
		t.Parallel()

		q, err := CompileFilters([]providers.Filter{
			providers.SelectFilter("类型", 99),
			{Kind: providers.FilterCheck, Name: "x", Index: 42},
			providers.SelectFilter(TagGroupName, 3),
			providers.SelectFilter(ProgressGroupName, 2),
			providers.SortFilter(1),
		})
		require.NoError(t, err)
		assert.Equal(t, Query{Tag: "62", Status: "2", Sort: "addtime"}, q)
	})
}
