package dto

// Paginacao is embedded in list filters bound from the query string.
type Paginacao struct {
	Page  int `form:"page,default=1"   validate:"min=1"`
	Limit int `form:"limit,default=50" validate:"min=1,max=200"`
}

// Offset converts page/limit to a SQL offset. Zero values fall back to the
// first page of 50.
func (p Paginacao) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize()
}

func (p Paginacao) PageSize() int {
	if p.Limit < 1 {
		return 50
	}
	return p.Limit
}

// ListResponse is the envelope for every paginated listing.
type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func NewListResponse[T any](data []T, total int64, p Paginacao) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return ListResponse[T]{Data: data, Total: total, Page: page, Limit: p.PageSize()}
}
