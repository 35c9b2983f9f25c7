package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultRadius is the number of neighbours shown on each side of the
// current page.
const DefaultRadius = 2

// EllipsisText is how an ellipsis marker renders.
const EllipsisText = "..."

// Marker is one element of the visible page sequence: either a page number
// or an ellipsis standing for skipped pages.
type Marker struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// Ellipsis is the marker for a gap.
var Ellipsis = Marker{Ellipsis: true}

func (m Marker) String() string {
	if m.Ellipsis {
		return EllipsisText
	}
	return strconv.Itoa(m.Page)
}

// Config mirrors the pager data file.
type Config struct {
	TotalPages  int `env:"PAGINATION_TOTAL_PAGES" envDefault:"1" json:"totalNumberOfPages" yaml:"totalNumberOfPages"`
	CurrentPage int `env:"PAGINATION_CURRENT_PAGE" envDefault:"1" json:"currentPage" yaml:"currentPage"`
}

// Option configures a Window.
type Option func(*Window)

// WithRadius sets how many neighbours are shown around the current page.
func WithRadius(r int) Option {
	return func(w *Window) { w.radius = r }
}

// Window tracks the current page of a pager. It is not safe for concurrent use.
type Window struct {
	total   int
	current int
	radius  int
}

// New validates the pair and returns a Window. Unlike the navigation
// methods, an invalid pair here is a hard failure.
func New(total, current int, opts ...Option) (*Window, error) {
	w := &Window{radius: DefaultRadius}
	for _, opt := range opts {
		opt(w)
	}

	if w.radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, w.radius)
	}
	if total < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageCount, total)
	}
	w.total = total

	if err := w.check(current); err != nil {
		return nil, err
	}
	w.current = current

	return w, nil
}

// NewFromConfig is New for a decoded Config.
func NewFromConfig(cfg Config, opts ...Option) (*Window, error) {
	return New(cfg.TotalPages, cfg.CurrentPage, opts...)
}

// Parse builds a Window from raw text such as query parameters or data
// attributes. Non-integer input is rejected.
func Parse(total, current string, opts ...Option) (*Window, error) {
	t, err := strconv.Atoi(strings.TrimSpace(total))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidPageCount, total)
	}
	c, err := strconv.Atoi(strings.TrimSpace(current))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidCurrentPage, current)
	}
	return New(t, c, opts...)
}

func (w *Window) check(page int) error {
	if page < 1 || page > w.total {
		return fmt.Errorf("%w: %d not in [1-%d]", ErrInvalidCurrentPage, page, w.total)
	}
	return nil
}

func (w *Window) CurrentPage() int { return w.current }
func (w *Window) TotalPages() int  { return w.total }
func (w *Window) Radius() int      { return w.radius }

// HasPrevious reports whether a previous page exists; the previous button
// is disabled otherwise.
func (w *Window) HasPrevious() bool { return w.current > 1 }

// HasNext reports whether a next page exists.
func (w *Window) HasNext() bool { return w.current < w.total }

// SetPage jumps to page n. Out-of-range pages are rejected and the current
// page stays as it was.
func (w *Window) SetPage(n int) error {
	if err := w.check(n); err != nil {
		return err
	}
	w.current = n
	return nil
}

func (w *Window) NextPage() error { return w.SetPage(w.current + 1) }

func (w *Window) PreviousPage() error { return w.SetPage(w.current - 1) }

// VisiblePages returns the markers a pager shows for the current page.
//
// The first and last pages are always present. An ellipsis is emitted only
// when at least one page is actually skipped, so it never sits next to a
// number it would duplicate. The result is computed on every call.
func (w *Window) VisiblePages() []Marker {
	// The radius never reaches past either end, so huge radii cannot overflow.
	start := w.current - min(w.radius, w.current-1)
	end := w.current + min(w.radius, w.total-w.current)

	markers := make([]Marker, 0, end-start+5)
	if start > 1 {
		markers = append(markers, w.page(1))
		if start > 2 {
			markers = append(markers, Ellipsis)
		}
	}
	for p := start; p <= end; p++ {
		markers = append(markers, w.page(p))
	}
	if end < w.total {
		if end < w.total-1 {
			markers = append(markers, Ellipsis)
		}
		markers = append(markers, w.page(w.total))
	}
	return markers
}

func (w *Window) page(n int) Marker {
	return Marker{Page: n, Current: n == w.current}
}
