package pagination

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Pageable carries the page/size/sort triple every list endpoint accepts.
// Pages are zero-based.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

type Order struct {
	Property   string
	Descending bool
}

var propertyPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Parse reads page, size and sort query parameters. Sort takes the form
// "property,asc" or "property,desc" and may repeat; properties that are not
// plain identifiers are ignored rather than reaching the database.
func Parse(r *http.Request) Pageable {
	q := r.URL.Query()
	p := Pageable{Size: DefaultSize}

	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("size")); err == nil && v > 0 {
		p.Size = v
		if p.Size > MaxSize {
			p.Size = MaxSize
		}
	}
	for _, raw := range q["sort"] {
		parts := strings.SplitN(raw, ",", 2)
		prop := strings.TrimSpace(parts[0])
		if !propertyPattern.MatchString(prop) {
			continue
		}
		desc := len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
		p.Sort = append(p.Sort, Order{Property: prop, Descending: desc})
	}
	return p
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// OrderBy renders the sort orders as a SQL ORDER BY body, mapping camelCase
// properties to snake_case columns. Empty when no sort was requested.
func (p Pageable) OrderBy() string {
	clauses := make([]string, 0, len(p.Sort))
	for _, o := range p.Sort {
		dir := "asc"
		if o.Descending {
			dir = "desc"
		}
		clauses = append(clauses, snakeCase(o.Property)+" "+dir)
	}
	return strings.Join(clauses, ", ")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WriteHeaders emits X-Total-Count plus first/prev/next/last Link relations
// for the given request URL, mirroring the pagination contract of the
// original HTTP surface.
func WriteHeaders(w http.ResponseWriter, r *http.Request, total int64, p Pageable) {
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))

	lastPage := 0
	if total > 0 {
		lastPage = int((total - 1) / int64(p.Size))
	}

	links := make([]string, 0, 4)
	link := func(rel string, page int) {
		links = append(links, fmt.Sprintf("<%s>; rel=\"%s\"", pageURL(r, page, p.Size), rel))
	}
	if p.Page < lastPage {
		link("next", p.Page+1)
	}
	if p.Page > 0 {
		link("prev", p.Page-1)
	}
	link("last", lastPage)
	link("first", 0)
	w.Header().Set("Link", strings.Join(links, ","))
}

func pageURL(r *http.Request, page, size int) string {
	q := url.Values{}
	for k, vs := range r.URL.Query() {
		if k == "page" || k == "size" {
			continue
		}
		q[k] = vs
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return r.URL.Path + "?" + q.Encode()
}
