package model

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page carries list pagination parameters. Page is 1-based.
type Page struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize clamps the parameters to the allowed range.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p Page) Limit() int {
	return p.PageSize
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginated is the list response envelope: total row count plus the
// requested page of results.
type Paginated struct {
	Count   int64       `json:"count"`
	Results interface{} `json:"results"`
}
