package repository

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize applies when a request names no size.
const DefaultPageSize = 20

// MaxPageSize caps client supplied sizes.
const MaxPageSize = 2000

// MaxPageNumber keeps Number*Size inside a 32-bit OFFSET for any size.
const MaxPageNumber = math.MaxInt32 / MaxPageSize

type Order struct {
	Property string
	Desc     bool
}

// Page is a zero-based page request. Size <= 0 means unpaged.
type Page struct {
	Number int
	Size   int
	Sort   []Order
}

func (p Page) Offset() int {
	if p.Size <= 0 || p.Number <= 0 {
		return 0
	}
	return min(p.Number, MaxPageNumber) * min(p.Size, MaxPageSize)
}

func (p Page) Paged() bool { return p.Size > 0 }

// ParsePage reads page, size and sort (repeatable "property[,asc|desc]")
// query values. Invalid numbers fall back to the defaults.
func ParsePage(page, size string, sort []string) Page {
	p := Page{Size: DefaultPageSize}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Number = min(n, MaxPageNumber)
	}
	if n, err := strconv.Atoi(size); err == nil && n > 0 {
		p.Size = min(n, MaxPageSize)
	}
	for _, s := range sort {
		prop, dir, _ := strings.Cut(s, ",")
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		p.Sort = append(p.Sort, Order{Property: prop, Desc: strings.EqualFold(strings.TrimSpace(dir), "desc")})
	}
	return p
}
