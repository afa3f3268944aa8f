package se8

import (
	"strings"
	"testing"

	"github.com/brogergvhs/se8/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    Query
		page int
		want string
	}{
		{
			name: "plain category",
			q:    Query{Sort: "hits"},
			page: 1,
			want: DefaultBaseURL + "/category/order/hits/page/1",
		},
		{
			name: "tag only",
			q:    Query{Tag: "62", Sort: "hits"},
			page: 1,
			want: DefaultBaseURL + "/category/tags/62/order/hits/page/1",
		},
		{
			name: "finish only",
			q:    Query{Status: "2", Sort: "addtime"},
			page: 4,
			want: DefaultBaseURL + "/category/finish/2/order/addtime/page/4",
		},
		{
			name: "tag then finish",
			q:    Query{Tag: "114", Status: "1", Sort: "hits"},
			page: 2,
			want: DefaultBaseURL + "/category/tags/114/finish/1/order/hits/page/2",
		},
		{
			name: "empty sort falls back",
			q:    Query{},
			page: 3,
			want: DefaultBaseURL + "/category/order/hits/page/3",
		},
		{
			name: "search ignores facets",
			q:    Query{Text: "one piece", Tag: "62", Status: "1", Sort: "addtime"},
			page: 2,
			want: DefaultBaseURL + "/search/one%20piece/2",
		},
		{
			name: "search escapes unicode",
			q:    Query{Text: "海贼"},
			page: 1,
			want: DefaultBaseURL + "/search/%E6%B5%B7%E8%B4%BC/1",
		},
		{
			name: "search escapes reserved characters",
			q:    Query{Text: "a+b&c=d/e:f,g;h@i$j"},
			page: 1,
			want: DefaultBaseURL + "/search/a%2Bb%26c%3Dd%2Fe%3Af%2Cg%3Bh%40i%24j/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ListingURL(DefaultBaseURL, tt.q, tt.page)
			assert.Equal(t, tt.want, got)

			if tt.q.Text != "" {
				assert.NotContains(t, got, "/category")
			} else {
				assert.NotContains(t, got, "/search/")
			}
		})
	}
}

func TestListingURLFromFilters(t *testing.T) {
	t.Parallel()

	q, err := CompileFilters([]providers.Filter{providers.SelectFilter(TagGroupName, 3)})
	require.NoError(t, err)

	assert.Equal(t,
		"https://se8.us/index.php/category/tags/62/order/hits/page/1",
		ListingURL(DefaultBaseURL, q, 1),
	)
}

func TestListingURLSegmentOrder(t *testing.T) {
	t.Parallel()

	for _, tag := range TagOptions.Options {
		for _, st := range ProgressOptions.Options {
			got := ListingURL(DefaultBaseURL, Query{Tag: tag.Code, Status: st.Code, Sort: "hits"}, 7)

			assert.Equal(t, tag.Code != "", strings.Contains(got, "/tags/"), got)
			assert.Equal(t, st.Code != "", strings.Contains(got, "/finish/"), got)

			order := strings.Index(got, "/order/")
			page := strings.Index(got, "/page/")
			require.True(t, order >= 0 && page > order, got)

			if i := strings.Index(got, "/tags/"); i >= 0 {
				assert.Less(t, i, order)
				if j := strings.Index(got, "/finish/"); j >= 0 {
					assert.Less(t, i, j)
				}
			}
			if j := strings.Index(got, "/finish/"); j >= 0 {
				assert.Less(t, j, order)
			}
		}
	}
}

func TestResourceURLs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultBaseURL+"/comic/1234", DetailURL(DefaultBaseURL, "1234"))
	assert.Equal(t, DefaultBaseURL+"/api/comic/chapter?mid=1234", ChapterListURL(DefaultBaseURL, "1234"))
	assert.Equal(t, DefaultBaseURL+"/chapter/98765", ReaderURL(DefaultBaseURL, "98765"))
}
