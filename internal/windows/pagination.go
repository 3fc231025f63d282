package windows

const (
	defaultPerPage = 50
	maxPerPage     = 500
)

// Pagination describes one page of a window listing.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination clamps page and perPage and computes the page count.
func NewPagination(page, perPage, total int) Pagination {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	perPage = min(perPage, maxPerPage)
	page = max(page, 1)
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}

// Slice returns the part of ws on the current page. Pages past the end are
// empty.
func (p Pagination) Slice(ws []Window) []Window {
	if p.Page < 1 || p.PerPage < 1 {
		return []Window{}
	}
	pages := (len(ws) + p.PerPage - 1) / p.PerPage
	if p.Page-1 >= pages {
		return []Window{}
	}
	from := (p.Page - 1) * p.PerPage
	to := min(from+p.PerPage, len(ws))
	return ws[from:to]
}
