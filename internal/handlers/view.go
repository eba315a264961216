package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/sbilibin2017/gw-forex-archive/internal/dates"
	"github.com/sbilibin2017/gw-forex-archive/internal/display"
	"github.com/sbilibin2017/gw-forex-archive/internal/flags"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
	"github.com/sbilibin2017/gw-forex-archive/internal/table"
)

// NewViewHandler returns the archive page state as JSON.
// @Summary Get archive view
// @Description Resolves the date, fetches the rates and returns the filtered, sorted and paginated tables per category
// @Tags archive
// @Produce json
// @Param date query string false "Selected date, yyyy-MM-dd; empty clears the selection"
// @Param q query string false "Search term matched against currency name and ticker"
// @Param tab query string false "Active category" Enums(below_10, 10_to_20)
// @Param sort.below_10 query string false "Sort field of the below_10 table"
// @Param dir.below_10 query string false "Sort direction of the below_10 table" Enums(asc, desc)
// @Param page.below_10 query int false "Page of the below_10 table"
// @Success 200 {object} models.ViewResponse "Archive view"
// @Failure 400 {object} models.ErrorResponse "Invalid or out-of-range date"
// @Router /api/v1/view [get]
func NewViewHandler(bounds DateBounds, newPresenter PresenterFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		q, err := ParsePageQuery(r.URL.Query(), bounds.Location())
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			return
		}

		page, err := present(r.Context(), newPresenter, q)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
			return
		}

		resp := toViewResponse(page)
		resp.MinDate = dates.FormatInput(bounds.MinDate())
		resp.MaxDate = dates.FormatInput(bounds.MaxDate())

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func toViewResponse(p display.Page) models.ViewResponse {
	resp := models.ViewResponse{
		Mode:           p.Mode.String(),
		Search:         p.Search,
		Message:        p.Message,
		ActiveTab:      p.ActiveTab,
		ShowBranchNote: p.ShowBranchNote,
		Panels:         make([]models.PanelResponse, 0, len(p.Panels)),
	}
	if p.Date != nil {
		resp.Date = dates.FormatInput(*p.Date)
	}

	for _, panel := range p.Panels {
		v := panel.View
		pr := models.PanelResponse{
			Category:   panel.Category,
			Label:      panel.Label,
			Active:     panel.Active,
			Sort:       string(v.State.Sort),
			Direction:  string(v.State.Direction),
			Page:       v.State.Page,
			TotalPages: v.TotalPages,
			TotalRows:  v.TotalRows,
			Rows:       make([]models.RateRow, 0, len(v.Rows)),
		}
		if len(v.Rows) == 0 {
			pr.Empty = v.EmptyMessage()
		}
		for _, rec := range v.Rows {
			pr.Rows = append(pr.Rows, toRateRow(rec))
		}
		resp.Panels = append(resp.Panels, pr)
	}
	return resp
}

func toRateRow(r models.RateRecord) models.RateRow {
	return models.RateRow{
		ID:       r.ID,
		Flag:     flags.Flag(r.Ticker),
		Currency: r.Currency,
		Ticker:   r.Ticker,
		Priority: table.IsPriority(r.Ticker),
		TTBuy:    table.FormatRate(r.TTBuy),
		TTSell:   table.FormatRate(r.TTSell),
		BillBuy:  table.FormatRate(r.BillBuy),
		BillSell: table.FormatRate(r.BillSell),
		FTCBuy:   table.FormatRate(r.FTCBuy),
		FTCSell:  table.FormatRate(r.FTCSell),
		CNBuy:    table.FormatRate(r.CNBuy),
		CNSell:   table.FormatRate(r.CNSell),
		Date:     r.Date,
	}
}

// RegisterViewHandler registers the JSON view route
func RegisterViewHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/v1/view", h)
}
