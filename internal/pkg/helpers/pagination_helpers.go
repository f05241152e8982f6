package helpers

import (
	"strconv"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

// Media library paging. Sizes outside 1..MaxPageSize fall back to DefaultPageSize.
const (
	DefaultPageSize = 24
	MaxPageSize     = 100
	DefaultPage     = 1
)

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return page, size
}

// CalculateOffsetLimit converts a 1-based page and a size into an SQL offset and limit.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	page, limit = normalizePage(page, size)
	return uint64(page-1) * uint64(limit), limit
}

// NewPaginationInfo builds the pagination block of a list response. The current page
// is capped at the last page; an empty result still reports one page.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	page, size = normalizePage(page, size)

	totalPages := 1
	if totalItems > 0 {
		totalPages = int((totalItems + int64(size) - 1) / int64(size))
	}
	if page > totalPages {
		page = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams reads ?page= and ?size=. Unparsable values count as missing.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.Query("page"))
	size, _ = strconv.Atoi(c.Query("size"))
	return normalizePage(page, size)
}
