package handlers

import (
	"net/http"

	"familyhub/internal/models"
	"familyhub/internal/service"
)

// ShoppingHandler handles the shopping list API
type ShoppingHandler struct {
	shoppingService *service.ShoppingService
}

// NewShoppingHandler creates a new shopping handler
func NewShoppingHandler(shoppingService *service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shoppingService: shoppingService}
}

type shoppingItemView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Quantity    string `json:"quantity"`
	Category    string `json:"category"`
	AddedBy     int64  `json:"addedBy"`
	IsCompleted bool   `json:"isCompleted"`
}

func viewShoppingItem(i models.ShoppingItem) shoppingItemView {
	return shoppingItemView{
		ID:          i.ID,
		Name:        i.Name,
		Quantity:    i.Quantity,
		Category:    i.Category,
		AddedBy:     i.AddedBy,
		IsCompleted: i.IsCompleted,
	}
}

// List handles GET /api/v1/shopping
func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	items, err := h.shoppingService.ListItems(member.FamilyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	views := make([]shoppingItemView, len(items))
	for i, item := range items {
		views[i] = viewShoppingItem(item)
	}
	respondJSON(w, http.StatusOK, views)
}

// Add handles POST /api/v1/shopping
func (h *ShoppingHandler) Add(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	var req struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Category string `json:"category"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	item, err := h.shoppingService.AddItem(member.FamilyID, member.ID, req.Name, req.Quantity, req.Category)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewShoppingItem(*item))
}

// Toggle handles POST /api/v1/shopping/{id}/toggle
func (h *ShoppingHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	itemID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item id", err)
		return
	}

	item, err := h.shoppingService.ToggleItem(member.FamilyID, itemID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewShoppingItem(*item))
}

// ClearCompleted handles POST /api/v1/shopping/clear-completed
func (h *ShoppingHandler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	count, err := h.shoppingService.ClearCompleted(member.FamilyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"cleared": count})
}

// Delete handles DELETE /api/v1/shopping/{id}
func (h *ShoppingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	itemID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item id", err)
		return
	}

	if err := h.shoppingService.DeleteItem(member.FamilyID, itemID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
