// pkg/pagination/pagination.go
package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage = 1
)

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	DefaultOpts = Options{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = Options{DefaultPerPage: 50, MaxPerPage: 500}
)

type Params struct {
	Page      int
	PerPage   int
	SortOrder string // asc|desc
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// Limit & Offset
func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }
func (p Params) Desc() bool  { return p.SortOrder != "asc" }

// ParseFiber: ?page= & ?per_page= (alias ?limit=) & ?order=asc|desc
func ParseFiber(c *fiber.Ctx, defaultSortOrder string, opt Options) Params {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := atoiDefault(firstNonEmpty(c.Query("per_page"), c.Query("limit")), opt.DefaultPerPage)
	if per < 1 {
		per = opt.DefaultPerPage
	}
	if opt.MaxPerPage > 0 && per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}

	order := strings.ToLower(strings.TrimSpace(firstNonEmpty(c.Query("order"), c.Query("sort"))))
	if order != "asc" && order != "desc" {
		order = strings.ToLower(defaultSortOrder)
		if order != "asc" && order != "desc" {
			order = "desc"
		}
	}

	return Params{Page: page, PerPage: per, SortOrder: order}
}

// Meta untuk response
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	NextPage   *int  `json:"next_page,omitempty"`
	PrevPage   *int  `json:"prev_page,omitempty"`
}

func BuildMeta(total int64, p Params) Meta {
	totalPages := 0
	if total > 0 && p.PerPage > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PerPage)))
	}
	meta := Meta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    totalPages > 0 && p.Page < totalPages,
	}
	if meta.HasPrev {
		prev := p.Page - 1
		meta.PrevPage = &prev
	}
	if meta.HasNext {
		next := p.Page + 1
		meta.NextPage = &next
	}
	return meta
}
