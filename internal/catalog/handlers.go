package catalog

import (
	"net/http"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/megamart-checkout/internal/common"
)

// Handler exposes read-only catalog endpoints.
type Handler struct {
	Store *Store
}

type itemView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Categories    []string        `json:"categories,omitempty"`
	Stock         int             `json:"stock"`
	PurchaseLimit *int            `json:"purchaseLimit,omitempty"`
	Discount      *discountView   `json:"discount,omitempty"`
}

type discountView struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// Items lists every catalog item with its live stock position.
func (h *Handler) Items(w http.ResponseWriter, _ *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog not configured", nil)
		return
	}
	records := h.Store.Snapshot()
	views := make([]itemView, 0, len(records))
	for _, rec := range records {
		if rec.Item == nil {
			continue
		}
		view := itemView{
			ID:            rec.Item.ID,
			Name:          rec.Item.Name,
			OriginalPrice: rec.Item.OriginalPrice,
			Categories:    rec.Item.Categories,
			Stock:         rec.Stock,
			PurchaseLimit: rec.Limit,
		}
		if d, ok := h.Store.Discount(rec.Item.ID); ok {
			view.Discount = &discountView{Type: string(d.Type), Value: d.Value}
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	common.JSON(w, http.StatusOK, map[string]any{"data": views})
}
