package pagination

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/drugs", nil)
	p := Parse(r)

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultSize, p.Size)
	assert.Empty(t, p.Sort)
}

func TestParse(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/drugs?page=2&size=50&sort=name,desc&sort=id", nil)
	p := Parse(r)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 50, p.Size)
	assert.Equal(t, []Order{
		{Property: "name", Descending: true},
		{Property: "id", Descending: false},
	}, p.Sort)
	assert.Equal(t, 100, p.Offset())
}

func TestParseRejectsBadInput(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/drugs?page=-1&size=9999&sort=name;drop,asc", nil)
	p := Parse(r)

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, MaxSize, p.Size)
	assert.Empty(t, p.Sort, "non-identifier sort properties must be dropped")
}

func TestOrderBy(t *testing.T) {
	tests := []struct {
		name     string
		sort     []Order
		expected string
	}{
		{"empty", nil, ""},
		{"single", []Order{{Property: "name"}}, "name asc"},
		{"camel case", []Order{{Property: "startDate", Descending: true}}, "start_date desc"},
		{
			"multiple",
			[]Order{{Property: "createdAt", Descending: true}, {Property: "id"}},
			"created_at desc, id asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pageable{Sort: tt.sort}
			assert.Equal(t, tt.expected, p.OrderBy())
		})
	}
}

func TestWriteHeaders(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/patients?filter=jo&page=1&size=10", nil)
	w := httptest.NewRecorder()

	WriteHeaders(w, r, 35, Pageable{Page: 1, Size: 10})

	assert.Equal(t, "35", w.Header().Get("X-Total-Count"))

	link := w.Header().Get("Link")
	assert.Contains(t, link, `rel="next"`)
	assert.Contains(t, link, `rel="prev"`)
	assert.Contains(t, link, `rel="first"`)
	assert.Contains(t, link, `rel="last"`)
	assert.Contains(t, link, "page=2", "next points at the following page")
	assert.Contains(t, link, "filter=jo", "other query params are carried through")
}

func TestWriteHeadersFirstPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/patients", nil)
	w := httptest.NewRecorder()

	WriteHeaders(w, r, 5, Pageable{Page: 0, Size: 20})

	link := w.Header().Get("Link")
	assert.NotContains(t, link, `rel="next"`)
	assert.NotContains(t, link, `rel="prev"`)
	assert.True(t, strings.Contains(link, `rel="last"`) && strings.Contains(link, `rel="first"`))
}

func TestWriteHeadersEmptyResult(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/patients", nil)
	w := httptest.NewRecorder()

	WriteHeaders(w, r, 0, Pageable{Page: 0, Size: 20})

	assert.Equal(t, "0", w.Header().Get("X-Total-Count"))
	assert.Contains(t, w.Header().Get("Link"), "page=0")
}
