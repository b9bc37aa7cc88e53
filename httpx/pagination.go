package httpx

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// TotalCountHeader carries the unpaged number of results of a list.
const TotalCountHeader = "X-Total-Count"

// PaginationHeaders sets X-Total-Count and an RFC 5988 Link header with
// next, prev, last and first relations for a zero-based page of size items.
// Other query parameters of u (sort, query, filters) are kept.
func PaginationHeaders(w http.ResponseWriter, u *url.URL, page, size int, total int64) {
	w.Header().Set(TotalCountHeader, strconv.FormatInt(total, 10))
	if size <= 0 {
		return
	}
	last := 0
	if total > 0 {
		last = int((total - 1) / int64(size))
	}

	link := func(p int, rel string) string {
		q := u.Query()
		q.Set("page", strconv.Itoa(p))
		q.Set("size", strconv.Itoa(size))
		ref := url.URL{Path: u.Path, RawQuery: q.Encode()}
		return fmt.Sprintf(`<%s>; rel="%s"`, ref.String(), rel)
	}

	var links []string
	if page < last {
		links = append(links, link(page+1, "next"))
	}
	if page > 0 {
		links = append(links, link(page-1, "prev"))
	}
	links = append(links, link(last, "last"), link(0, "first"))
	w.Header().Set("Link", strings.Join(links, ","))
}
