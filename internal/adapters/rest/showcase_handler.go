package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/philly/showcase/backend/internal/showcase/application"
	"github.com/philly/showcase/backend/internal/showcase/domain"
	"github.com/shopspring/decimal"
)

// ShowcaseService is what the showcase handler needs from the application layer
type ShowcaseService interface {
	Publish(ctx context.Context, params application.PublishParams) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
}

// ShowcaseHandler serves /api/showcase
type ShowcaseHandler struct {
	*BaseHandler
	service ShowcaseService
}

// NewShowcaseHandler creates a new showcase handler
func NewShowcaseHandler(base *BaseHandler, service ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{
		BaseHandler: base,
		service:     service,
	}
}

// PublishRequest is the body of POST /api/showcase
type PublishRequest struct {
	ID              *string          `json:"id"`
	WarehouseItemID string           `json:"warehouseItemId"`
	Status          *string          `json:"status"`
	Price           *decimal.Decimal `json:"price"`
	Currency        *string          `json:"currency"`
	Meta            json.RawMessage  `json:"meta"`
	OwnerLogin      *string          `json:"ownerLogin"`
}

// ListingResponse is the wire form of a listing
type ListingResponse struct {
	ID              string          `json:"id"`
	WarehouseItemID string          `json:"warehouseItemId"`
	Status          *string         `json:"status"`
	Price           *json.Number    `json:"price"`
	Currency        *string         `json:"currency"`
	Meta            json.RawMessage `json:"meta"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt"`
}

// PublishResponse is the body of a successful publish
type PublishResponse struct {
	Success bool            `json:"success"`
	Item    ListingResponse `json:"item"`
}

// DeleteResponse is the body of a successful delete
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ListListings handles GET /api/showcase
func (h *ShowcaseHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.List(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	response := make([]ListingResponse, 0, len(listings))
	for _, listing := range listings {
		response = append(response, toListingResponse(listing))
	}

	h.WriteJSONResponse(w, r, response, http.StatusOK)
}

// PublishListing handles POST /api/showcase
func (h *ShowcaseHandler) PublishListing(w http.ResponseWriter, r *http.Request) {
	var req PublishRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	listing, err := h.service.Publish(r.Context(), application.PublishParams{
		ID:              deref(req.ID),
		WarehouseItemID: req.WarehouseItemID,
		Status:          req.Status,
		Price:           req.Price,
		Currency:        req.Currency,
		Meta:            req.Meta,
		OwnerLogin:      deref(req.OwnerLogin),
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, PublishResponse{
		Success: true,
		Item:    toListingResponse(listing),
	}, http.StatusOK)
}

// GetListing handles GET /api/showcase/{id}
func (h *ShowcaseHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, toListingResponse(listing), http.StatusOK)
}

// DeleteListing handles DELETE /api/showcase/{id}. It succeeds whether or
// not the listing existed.
func (h *ShowcaseHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, DeleteResponse{Success: true}, http.StatusOK)
}

func toListingResponse(listing *domain.Listing) ListingResponse {
	resp := ListingResponse{
		ID:              listing.ID,
		WarehouseItemID: listing.WarehouseItemID,
		Status:          listing.Status,
		Currency:        listing.Currency,
		Meta:            listing.Meta,
		CreatedAt:       listing.CreatedAt,
		UpdatedAt:       listing.UpdatedAt,
	}
	if listing.Price != nil {
		// Render as a JSON number without float rounding
		price := json.Number(listing.Price.String())
		resp.Price = &price
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
