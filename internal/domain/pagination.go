package domain

import "math"

// DefaultTake caps every list endpoint unless configured otherwise.
const DefaultTake = 20

const (
	maxTake = 100
	// maxPage keeps Offset within a Postgres integer.
	maxPage = math.MaxInt32 / maxTake
)

type PaginationParams struct {
	Page     int `json:"page" query:"page"`
	PageSize int `json:"page_size" query:"page_size"`
}

func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:     1,
		PageSize: DefaultTake,
	}
}

// Take returns first-page params capped at n items.
func Take(n int) PaginationParams {
	p := PaginationParams{Page: 1, PageSize: n}
	p.Validate()
	return p
}

func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > maxPage {
		p.Page = maxPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultTake
	}
	if p.PageSize > maxTake {
		p.PageSize = maxTake
	}
}

func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
