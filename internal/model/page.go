package model

// PageInfo describes the server-side pagination window of the current
// avatar listing. PageSize is fixed for the session.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TotalPagesFor computes ceil(total/pageSize) with a floor of 1, so an
// empty collection still occupies one (empty) page.
func TotalPagesFor(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// NewPageInfo builds a consistent PageInfo, clamping page into the valid
// range implied by total and pageSize.
func NewPageInfo(page, pageSize, total int) PageInfo {
	pages := TotalPagesFor(total, pageSize)
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	return PageInfo{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: pages,
	}
}
