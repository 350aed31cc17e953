package service

import (
	"errors"
	"fmt"
	"time"

	"familyhub/internal/models"
	"familyhub/internal/repository"
)

var ErrItemNotFound = errors.New("shopping item not found")

// ShoppingService handles the shared shopping list
type ShoppingService struct {
	shoppingRepo *repository.ShoppingRepository
}

// NewShoppingService creates a new shopping service
func NewShoppingService(shoppingRepo *repository.ShoppingRepository) *ShoppingService {
	return &ShoppingService{shoppingRepo: shoppingRepo}
}

// ListItems returns the family's shopping items, newest first
func (s *ShoppingService) ListItems(familyID int64) ([]models.ShoppingItem, error) {
	return s.shoppingRepo.ListItems(familyID)
}

// AddItem adds an item to the list. An unknown category lands in
// "Other" rather than failing the add.
func (s *ShoppingService) AddItem(familyID, memberID int64, name, quantity, category string) (*models.ShoppingItem, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if !models.IsValidCategory(category) {
		category = "Other"
	}

	item, err := s.shoppingRepo.CreateItem(models.ShoppingItem{
		FamilyID:  familyID,
		Name:      name,
		Quantity:  quantity,
		Category:  category,
		AddedBy:   memberID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	return item, nil
}

// ToggleItem flips an item's ticked-off state
func (s *ShoppingService) ToggleItem(familyID, itemID int64) (*models.ShoppingItem, error) {
	item, err := s.shoppingRepo.GetItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil || item.FamilyID != familyID {
		return nil, ErrItemNotFound
	}

	item.IsCompleted = !item.IsCompleted
	if err := s.shoppingRepo.SetCompleted(itemID, item.IsCompleted); err != nil {
		return nil, fmt.Errorf("failed to toggle item: %w", err)
	}
	return item, nil
}

// ClearCompleted removes every ticked-off item and reports the count
func (s *ShoppingService) ClearCompleted(familyID int64) (int64, error) {
	return s.shoppingRepo.ClearCompleted(familyID)
}

// DeleteItem removes one item from the list
func (s *ShoppingService) DeleteItem(familyID, itemID int64) error {
	item, err := s.shoppingRepo.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil || item.FamilyID != familyID {
		return ErrItemNotFound
	}
	return s.shoppingRepo.DeleteItem(itemID)
}
