package se8

import (
	"errors"
	"fmt"

	"github.com/brogergvhs/se8/internal/providers"
)

var ErrFilterIndex = errors.New("filter index out of range")

const (
	TagGroupName      = "标签"
	ProgressGroupName = "进度"

	defaultSort = "hits"
)

// Option order mirrors the order the reader shows them in; the index the
// host sends back is a position in these lists.
var (
	TagOptions = providers.OptionGroup{
		Name: TagGroupName,
		Options: []providers.Option{
			{Label: "全部", Code: ""},
			{Label: "61", Code: "61"},
			{Label: "63", Code: "63"},
			{Label: "62", Code: "62"},
			{Label: "64", Code: "64"},
			{Label: "11", Code: "11"},
			{Label: "15", Code: "15"},
			{Label: "17", Code: "17"},
			{Label: "29", Code: "29"},
			{Label: "31", Code: "31"},
			{Label: "67", Code: "67"},
			{Label: "68", Code: "68"},
			{Label: "69", Code: "69"},
			{Label: "75", Code: "75"},
			{Label: "78", Code: "78"},
			{Label: "84", Code: "84"},
			{Label: "86", Code: "86"},
			{Label: "87", Code: "87"},
			{Label: "91", Code: "91"},
			{Label: "98", Code: "98"},
			{Label: "106", Code: "106"},
			{Label: "114", Code: "114"},
		},
	}

	ProgressOptions = providers.OptionGroup{
		Name: ProgressGroupName,
		Options: []providers.Option{
			{Label: "全部", Code: ""},
			{Label: "连载", Code: "1"},
			{Label: "完结", Code: "2"},
		},
	}

	SortOptions = providers.OptionGroup{
		Name: "排序",
		Options: []providers.Option{
			{Label: "人气", Code: "hits"},
			{Label: "更新", Code: "addtime"},
		},
	}
)

// Query is the compiled form of a list request's filters.
type Query struct {
	Text   string
	Tag    string
	Status string
	Sort   string
}

// CompileFilters folds the host filters into a Query. The last title
// filter wins; select filters with an unknown group name and filters of
// any other kind are ignored. An index outside its option group is an error.
func CompileFilters(filters []providers.Filter) (Query, error) {
	q := Query{Sort: defaultSort}

	for _, f := range filters {
		switch f.Kind {
		case providers.FilterTitle:
			q.Text = f.Text

		case providers.FilterSelect:
			var target *string
			var group providers.OptionGroup

			switch f.Name {
			case TagGroupName:
				target, group = &q.Tag, TagOptions
			case ProgressGroupName:
				target, group = &q.Status, ProgressOptions
			default:
				continue
			}

			code, err := resolve(group, f.Index)
			if err != nil {
				return Query{}, err
			}
			*target = code

		case providers.FilterSort:
			code, err := resolve(SortOptions, f.Index)
			if err != nil {
				return Query{}, err
			}
			q.Sort = code
		}
	}

	return q, nil
}

func resolve(g providers.OptionGroup, idx int) (string, error) {
	code, ok := g.Code(idx)
	if !ok {
		return "", fmt.Errorf("%w: %s index %d (have %d options)", ErrFilterIndex, g.Name, idx, len(g.Options))
	}

	return code, nil
}
