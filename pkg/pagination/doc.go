// Package pagination computes what a pager control should show.
//
// A Window holds the current page and the page count and derives, on every
// call, the ordered markers to render around the current page:
//
//	w, err := pagination.New(10, 5)
//	if err != nil {
//	    return err
//	}
//	w.VisiblePages() // 1 ... 3 4 5 6 7 ... 10
//	w.HasPrevious()  // true
//	_ = w.NextPage()
//
// New rejects an invalid page pair outright. Navigation methods (NextPage,
// PreviousPage, SetPage) return an error for out-of-range targets and keep
// the current page unchanged.
package pagination
