package mapper

import (
	"Tecnofit/internal/dto"
	"Tecnofit/internal/repository"
)

// ToPageDTO converts a repository page. From and To are 1-based positions of
// the first and last item and stay nil for an empty page.
func ToPageDTO[T any](page *repository.Pagination[T]) dto.PageDTO[T] {
	items := page.Items
	if items == nil {
		items = make([]T, 0)
	}
	meta := dto.PageMetaDTO{
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		Total:       page.Total,
		LastPage:    page.LastPage,
	}
	if len(items) > 0 {
		from := (page.Page-1)*page.PerPage + 1
		to := from + len(items) - 1
		meta.From = &from
		meta.To = &to
	}
	return dto.PageDTO[T]{Data: items, Meta: meta}
}
