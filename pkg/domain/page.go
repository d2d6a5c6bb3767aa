package domain

// DefaultPage and DefaultPageSize are applied when a request omits them.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page     int
	PageSize int
}

// WithDefaults returns a copy of p where zero values are replaced with the
// default page and the provided default page size.
func (p Pagination) WithDefaults(defaultPageSize int) Pagination {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = defaultPageSize
	}

	return p
}

// Skip is the number of rows preceding the requested page.
func (p Pagination) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// PagedResult wraps one page of data together with paging metadata.
type PagedResult[T any] struct {
	Data       T     `json:"data"`
	TotalCount int64 `json:"totalCount"`
	PageNumber int   `json:"pageNumber"`
	TotalPages int64 `json:"totalPages"`
	// NextPage is always PageNumber + 1, even past the last page.
	NextPage int `json:"nextPage"`
}
