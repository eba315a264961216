package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-forex-archive/internal/dates"
	"github.com/sbilibin2017/gw-forex-archive/internal/display"
	"github.com/sbilibin2017/gw-forex-archive/internal/logger"
)

// PageTemplate is the name of the archive page template.
const PageTemplate = "index.html"

// Column is a table header cell.
type Column struct {
	Field    string
	Title    string
	Sortable bool
}

var columns = []Column{
	{Field: "currency", Title: "Currency", Sortable: true},
	{Field: "ticker", Title: "Ticker", Sortable: true},
	{Field: "tt_buy", Title: "TT Buy"},
	{Field: "tt_sell", Title: "TT Sell"},
	{Field: "bill_buy", Title: "Bill Buy"},
	{Field: "bill_sell", Title: "Bill Sell"},
	{Field: "ftc_buy", Title: "FTC Buy"},
	{Field: "ftc_sell", Title: "FTC Sell"},
	{Field: "cn_buy", Title: "CN Buy"},
	{Field: "cn_sell", Title: "CN Sell"},
}

// PageData is passed to the page template.
type PageData struct {
	Page      display.Page
	Links     Links
	Columns   []Column
	DateValue string
	MinDate   string
	MaxDate   string
	Error     string
}

// NewPageHandler returns the HTML archive page.
// An unparseable or out-of-range date answers 400 with the picker and a notice.
func NewPageHandler(tmpl *template.Template, bounds DateBounds, newPresenter PresenterFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Columns: columns,
			MinDate: dates.FormatInput(bounds.MinDate()),
			MaxDate: dates.FormatInput(bounds.MaxDate()),
		}
		status := http.StatusOK

		q, err := ParsePageQuery(r.URL.Query(), bounds.Location())
		data.Links = q.Links()
		if err == nil {
			data.Page, err = present(r.Context(), newPresenter, q)
		}
		if err != nil {
			status = http.StatusBadRequest
			data.Error = userError(err)
			data.Page = display.Page{
				Mode:    display.ModeNoDateSelected,
				Message: display.MessageNoDateSelected,
				Search:  q.Search,
			}
		}
		if data.Page.Date != nil {
			data.DateValue = dates.FormatInput(*data.Page.Date)
		}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, PageTemplate, data); err != nil {
			logger.Log.Errorw("failed to render page", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = buf.WriteTo(w)
	}
}

func userError(err error) string {
	if errors.Is(err, ErrInvalidDate) {
		return "The date must be given as yyyy-MM-dd."
	}
	return "The selected date is outside the archive range."
}

// RegisterPageHandler registers the archive page
func RegisterPageHandler(r chi.Router, h http.Handler) {
	r.Method(http.MethodGet, "/", h)
}
