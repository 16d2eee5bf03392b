package store

// PageParams contains page-number pagination request parameters.
type PageParams struct {
	Page     int // 1-based page number
	PageSize int // Items per page (defaults to 10 with a maximum of 100)
}

// Page contains one page of results plus navigation metadata.
type Page[T any] struct {
	Count    int  `json:"count"`              // Total items across all pages
	Next     *int `json:"next"`               // Next page number, nil on the last page
	Previous *int `json:"previous"`           // Previous page number, nil on the first page
	Results  []T  `json:"results"`
}

// DefaultPageParams returns sensible defaults.
func DefaultPageParams() PageParams {
	return PageParams{
		Page:     1,
		PageSize: 10,
	}
}

// Validate checks and corrects pagination parameters.
func (p *PageParams) Validate() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Paginate slices items into the requested page.
// A page past the end yields an empty result set, not an error.
func Paginate[T any](items []T, params PageParams) Page[T] {
	params.Validate()

	count := len(items)
	start := (params.Page - 1) * params.PageSize
	end := start + params.PageSize

	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	page := Page[T]{
		Count:   count,
		Results: items[start:end],
	}

	if end < count {
		next := params.Page + 1
		page.Next = &next
	}
	if params.Page > 1 && start < count {
		prev := params.Page - 1
		page.Previous = &prev
	}

	return page
}
