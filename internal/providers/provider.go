package providers

import "context"

type Status int

const (
	StatusUnknown Status = iota
	StatusOngoing
	StatusCompleted
	StatusCancelled
	StatusHiatus
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusHiatus:
		return "hiatus"
	default:
		return "unknown"
	}
}

type ContentRating int

const (
	RatingSafe ContentRating = iota
	RatingSuggestive
	RatingNsfw
)

func (r ContentRating) String() string {
	switch r {
	case RatingSuggestive:
		return "suggestive"
	case RatingNsfw:
		return "nsfw"
	default:
		return "safe"
	}
}

type Viewer int

const (
	ViewerLeftToRight Viewer = iota
	ViewerRightToLeft
	ViewerVertical
	ViewerScroll
)

func (v Viewer) String() string {
	switch v {
	case ViewerRightToLeft:
		return "rtl"
	case ViewerVertical:
		return "vertical"
	case ViewerScroll:
		return "scroll"
	default:
		return "ltr"
	}
}

// MangaSummary is one entry of a catalog or search page.
type MangaSummary struct {
	ID    string
	Cover string
	Title string
}

type MangaPage struct {
	Manga   []MangaSummary
	HasMore bool
}

type Manga struct {
	ID            string
	Cover         string
	Title         string
	Author        string
	Artist        string
	Description   string
	URL           string
	Categories    []string
	Status        Status
	ContentRating ContentRating
	Viewer        Viewer
}

type Chapter struct {
	ID     string
	Title  string
	Number float64
	URL    string
}

type Page struct {
	Index int
	URL   string
}

// Source is the contract a catalog site implements for the reader.
// Every call performs one fetch and holds no state between calls.
type Source interface {
	List(ctx context.Context, filters []Filter, page int) (MangaPage, error)
	Detail(ctx context.Context, mangaID string) (Manga, error)
	Chapters(ctx context.Context, mangaID string) ([]Chapter, error)
	Pages(ctx context.Context, mangaID, chapterID string) ([]Page, error)
}
