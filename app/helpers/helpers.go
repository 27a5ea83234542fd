package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyRole   contextKey = "role"
	ContextKeyOwner  contextKey = "owner"
)

// GenerateOrderCode builds a human-facing order code such as
// ORD-20260115-9F3A21BC. The uuid suffix makes collisions across
// concurrent checkouts astronomically unlikely; the unique index on
// orders.code is the backstop.
func GenerateOrderCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

type Pagination struct {
	Page   int
	Limit  int
	Search string
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination reads page/limit/search query parameters with the
// admin-list defaults.
func ParsePagination(r *http.Request) Pagination {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return Pagination{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
