package services

import (
	"strings"

	"pocket-reminders/models"
)

// ListService handles business logic for lists
type ListService struct {
	repo ListRepository
}

func NewListService(repo ListRepository) *ListService {
	return &ListService{repo: repo}
}

// List retrieves all lists
func (ls *ListService) List() ([]models.List, error) {
	return ls.repo.GetLists()
}

// Get retrieves a single list by id
func (ls *ListService) Get(id int64) (*models.List, error) {
	list, err := ls.repo.GetListByID(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}

// Create creates a new list, applying the default color and icon when the
// caller leaves them empty.
func (ls *ListService) Create(name, color, icon string) (*models.List, error) {
	name = strings.TrimSpace(name)

	if color == "" {
		color = models.DefaultListColor
	}
	if icon == "" {
		icon = models.DefaultListIcon
	}

	id, err := ls.repo.CreateList(name, color, icon)
	if err != nil {
		return nil, err
	}

	// Read back to pick up the storage-assigned creation timestamp
	list, err := ls.repo.GetListByID(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return &models.List{ID: id, Name: name, Color: color, Icon: icon}, nil
	}
	return list, nil
}

// Update rewrites the list name and, when present, its color and icon.
func (ls *ListService) Update(id int64, req *models.UpdateListRequest) (*models.List, error) {
	name := strings.TrimSpace(req.Name)

	updated, err := ls.repo.UpdateListByID(id, name, req.Color, req.Icon)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrListNotFound
	}

	return ls.Get(id)
}

// Delete removes a list. Reminders referencing it are left untouched.
func (ls *ListService) Delete(id int64) error {
	deleted, err := ls.repo.DeleteListByID(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrListNotFound
	}
	return nil
}
