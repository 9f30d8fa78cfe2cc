package dto

import "hotelops/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// Paginate cắt slice theo page/limit (page bắt đầu từ 1)
func Paginate[T any](items []T, page, limit int) PaginatedResponse[[]T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	total := len(items)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	return PaginatedResponse[[]T]{
		Data:       items[start:end],
		Pagination: response.Pagination{Page: page, Limit: limit, Total: total},
	}
}
