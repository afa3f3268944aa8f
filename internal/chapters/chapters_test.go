package chapters

import (
	"testing"

	"github.com/brogergvhs/se8/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []Chapter {
	return Wrap("恋爱 漫画", []providers.Chapter{
		{ID: "5", Title: "第1话", Number: 3},
		{ID: "6", Title: "第2话 (上)", Number: 2},
		{ID: "9", Title: "1", Number: 1},
		{ID: "12", Title: "", Number: 0.5},
	})
}

func TestWrapLabels(t *testing.T) {
	t.Parallel()

	got := sample()
	assert.Equal(t, "3", got[0].Label)
	assert.Equal(t, "0.5", got[3].Label)
	assert.Equal(t, "恋爱 漫画", got[1].Series)
	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, 4, got[3].Position)
}

func TestFileNames(t *testing.T) {
	t.Parallel()

	all := sample()
	assert.Equal(t, "恋爱_漫画_3_第1话.cbz", all[0].OutputCBZ())
	assert.Equal(t, "恋爱_漫画_2_第2话_上_tmp", all[1].FolderName())
	assert.Equal(t, "恋爱_漫画_1.cbz", all[2].OutputCBZ())
	assert.Equal(t, "恋爱_漫画_0_5.cbz", all[3].OutputCBZ())
}

func TestSelectionApply(t *testing.T) {
	t.Parallel()

	all := sample()
	ids := func(cs []Chapter) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{"all", Selection{}, []string{"5", "6", "9", "12"}},
		{"by label", Selection{One: "0.5"}, []string{"12"}},
		{"by id", Selection{One: "9"}, []string{"9"}},
		{"by position", Selection{One: "4"}, []string{"12"}},
		{"one wins over range", Selection{One: "5", Range: "1-2"}, []string{"5"}},
		{"range", Selection{Range: "2-3"}, []string{"6", "9"}},
		{"range clamps end", Selection{Range: "3-10"}, []string{"9", "12"}},
		{"list", Selection{List: "4, 1,x,1,9"}, []string{"12", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.sel.Apply(all)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSelectionErrors(t *testing.T) {
	t.Parallel()

	all := sample()

	tests := []struct {
		name string
		sel  Selection
		want error
	}{
		{"unknown chapter", Selection{One: "77"}, ErrNotFound},
		{"reversed range", Selection{Range: "3-1"}, ErrBadSelection},
		{"no dash", Selection{Range: "3"}, ErrBadSelection},
		{"range past end", Selection{Range: "7-9"}, ErrNotFound},
		{"empty list match", Selection{List: "x,0,99"}, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.sel.Apply(all)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.True(t, Selection{}.Empty())
	assert.False(t, Selection{List: "1"}.Empty())
}
