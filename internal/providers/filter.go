package providers

type FilterKind int

const (
	FilterTitle FilterKind = iota
	FilterSelect
	FilterSort
	FilterCheck
)

// Filter is one user selection sent with a list request.
// Title uses Text; Select and Sort use Index; Select also uses Name to
// pick its option group.
type Filter struct {
	Kind  FilterKind
	Name  string
	Text  string
	Index int
}

func TitleFilter(text string) Filter {
	return Filter{Kind: FilterTitle, Name: "title", Text: text}
}

func SelectFilter(name string, index int) Filter {
	return Filter{Kind: FilterSelect, Name: name, Index: index}
}

func SortFilter(index int) Filter {
	return Filter{Kind: FilterSort, Name: "sort", Index: index}
}

// Option is a single choice in a select or sort filter.
type Option struct {
	Label string
	Code  string
}

// OptionGroup maps a filter's position-based index to the site code.
type OptionGroup struct {
	Name    string
	Options []Option
}

// Code returns the code at idx and false when idx is outside the group.
func (g OptionGroup) Code(idx int) (string, bool) {
	if idx < 0 || idx >= len(g.Options) {
		return "", false
	}

	return g.Options[idx].Code, true
}

func (g OptionGroup) Labels() []string {
	out := make([]string, len(g.Options))
	for i, o := range g.Options {
		out[i] = o.Label
	}

	return out
}
