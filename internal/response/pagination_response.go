package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination describes a single result window, as used by the
// score history endpoint (limit-based, no offset paging).
func NewPagination(pageSize, returned int, total int64) *Pagination {
	return &Pagination{
		Page:       1,
		PageSize:   pageSize,
		TotalItems: total,
		HasMore:    total > int64(returned),
		From:       1,
		To:         returned,
	}
}
