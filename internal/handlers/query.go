package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-forex-archive/internal/dates"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
	"github.com/sbilibin2017/gw-forex-archive/internal/table"
)

// Query parameters carrying the page state.
const (
	ParamDate   = "date"
	ParamSearch = "q"
	ParamTab    = "tab"

	prefixSort = "sort."
	prefixDir  = "dir."
	prefixPage = "page."
)

// ErrInvalidDate is returned when the date parameter is not yyyy-MM-dd.
var ErrInvalidDate = errors.New("invalid date")

// PageQuery is the page state decoded from a query string.
type PageQuery struct {
	// Date is nil when the parameter is absent or empty.
	Date *time.Time
	// Cleared is set when the parameter is present but empty.
	Cleared bool
	Search  string
	Tab     models.Category
	Tables  map[models.Category]table.ViewState

	values url.Values
}

// ParsePageQuery decodes v. Unknown sort fields and malformed page numbers
// fall back to their defaults; only a malformed date is an error.
func ParsePageQuery(v url.Values, loc *time.Location) (PageQuery, error) {
	q := PageQuery{
		Search: v.Get(ParamSearch),
		Tab:    models.Category(v.Get(ParamTab)),
		Tables: make(map[models.Category]table.ViewState),
		values: v,
	}

	if raw, ok := v[ParamDate]; ok {
		if s := strings.TrimSpace(first(raw)); s == "" {
			q.Cleared = true
		} else {
			d, err := dates.ParseInput(s, loc)
			if err != nil {
				return q, fmt.Errorf("%w: %q", ErrInvalidDate, s)
			}
			q.Date = &d
		}
	}

	for key, vals := range v {
		var c models.Category
		switch {
		case strings.HasPrefix(key, prefixSort):
			c = models.Category(strings.TrimPrefix(key, prefixSort))
		case strings.HasPrefix(key, prefixDir):
			c = models.Category(strings.TrimPrefix(key, prefixDir))
		case strings.HasPrefix(key, prefixPage):
			c = models.Category(strings.TrimPrefix(key, prefixPage))
		default:
			continue
		}
		if c == "" || len(vals) == 0 {
			continue
		}
		if _, seen := q.Tables[c]; !seen {
			q.Tables[c] = tableState(v, c)
		}
	}

	return q, nil
}

func tableState(v url.Values, c models.Category) table.ViewState {
	st := table.NewViewState()
	if f, ok := table.ParseField(v.Get(prefixSort + string(c))); ok {
		st.Sort = f
		st.Direction = table.ParseDirection(v.Get(prefixDir + string(c)))
	}
	if n, err := strconv.Atoi(v.Get(prefixPage + string(c))); err == nil {
		st = st.WithPage(n)
	}
	return st
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// TableState returns the decoded state of category c.
func (q PageQuery) TableState(c models.Category) table.ViewState {
	if st, ok := q.Tables[c]; ok {
		return st
	}
	return table.NewViewState()
}

// Links builds the URLs of the page controls from the current query.
func (q PageQuery) Links() Links {
	return Links{query: q}
}

// Links builds hrefs that change one piece of page state.
type Links struct {
	query PageQuery
}

func (l Links) href(mutate func(url.Values)) string {
	v := url.Values{}
	for k, vals := range l.query.values {
		v[k] = append([]string(nil), vals...)
	}
	mutate(v)
	if len(v) == 0 {
		return "?"
	}
	return "?" + v.Encode()
}

// Sort toggles field f of category c and returns to the first page.
func (l Links) Sort(c models.Category, f string) string {
	next := l.query.TableState(c).ToggleSort(table.Field(f))
	return l.href(func(v url.Values) {
		v.Set(prefixSort+string(c), string(next.Sort))
		v.Set(prefixDir+string(c), string(next.Direction))
		v.Del(prefixPage + string(c))
	})
}

// SortIndicator marks the active sort column.
func (l Links) SortIndicator(c models.Category, f string) string {
	st := l.query.TableState(c)
	if st.Sort != table.Field(f) {
		return "↕"
	}
	if st.Direction == table.Desc {
		return "↓"
	}
	return "↑"
}

// Page moves category c to page n.
func (l Links) Page(c models.Category, n int) string {
	return l.href(func(v url.Values) {
		v.Set(prefixPage+string(c), strconv.Itoa(n))
	})
}

// Tab activates category c.
func (l Links) Tab(c models.Category) string {
	return l.href(func(v url.Values) {
		v.Set(ParamTab, string(c))
	})
}

// ClearDate drops the selected date and everything tied to it.
func (l Links) ClearDate() string {
	return l.href(func(v url.Values) {
		v.Set(ParamDate, "")
		dropTableParams(v)
	})
}

// HiddenField is a name/value pair re-submitted by a GET form.
type HiddenField struct {
	Name  string
	Value string
}

// SearchFields keeps everything but the term and the page numbers, so a
// new search lands on the first page with the current sort.
func (l Links) SearchFields() []HiddenField {
	return l.fields(func(k string) bool {
		return k != ParamSearch && !strings.HasPrefix(k, prefixPage)
	})
}

// DateFields keeps the search term and active tab across date changes.
func (l Links) DateFields() []HiddenField {
	return l.fields(func(k string) bool {
		return k == ParamSearch || k == ParamTab
	})
}

func (l Links) fields(keep func(string) bool) []HiddenField {
	keys := make([]string, 0, len(l.query.values))
	for k := range l.query.values {
		if keep(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]HiddenField, 0, len(keys))
	for _, k := range keys {
		out = append(out, HiddenField{Name: k, Value: l.query.values.Get(k)})
	}
	return out
}

func dropTableParams(v url.Values) {
	for k := range v {
		if strings.HasPrefix(k, prefixSort) || strings.HasPrefix(k, prefixDir) || strings.HasPrefix(k, prefixPage) {
			v.Del(k)
		}
	}
}
