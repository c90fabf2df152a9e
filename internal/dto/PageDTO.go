package dto

type PageDTO[T any] struct {
	Data []T         `json:"data"`
	Meta PageMetaDTO `json:"meta"`
}

type PageMetaDTO struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	From        *int  `json:"from"`
	To          *int  `json:"to"`
}
