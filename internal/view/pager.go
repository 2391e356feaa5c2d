package view

import "strconv"

// Pager is the previous/next control under a table.
type Pager struct {
	Page       int
	TotalPages int
	PrevURL    string
	NextURL    string
}

// NewPager builds a pager driven by the named query parameter. totalPages below 1 counts as 1.
func NewPager(q Query, param string, page, totalPages int) Pager {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	return Pager{
		Page:       page,
		TotalPages: totalPages,
		PrevURL:    q.With(param, strconv.Itoa(page-1)),
		NextURL:    q.With(param, strconv.Itoa(page+1)),
	}
}

// Show reports whether there is more than one page.
func (p Pager) Show() bool { return p.TotalPages > 1 }

func (p Pager) HasPrev() bool { return p.Page > 1 }

func (p Pager) HasNext() bool { return p.Page < p.TotalPages }
