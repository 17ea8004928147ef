package catalog

import (
	"context"
)

// CreateRequest carries the fields needed to add a service to the catalog.
type CreateRequest struct {
	Type        ServiceType
	Description string
	Price       float64
	IsAvailable bool
}

// UpdateRequest carries the optional fields of a service update.
type UpdateRequest struct {
	Type        *ServiceType
	Description *string
	Price       *float64
	IsAvailable *bool
}

// Catalog defines business logic for the service catalog. The entity in
// this package is already named Service, hence the interface name.
type Catalog interface {
	Create(ctx context.Context, req CreateRequest) (*Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Service, error)
	List(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Service, error)
	Delete(ctx context.Context, id string) error
}

type catalog struct {
	repo Repository
}

// NewCatalog creates a new service Catalog.
func NewCatalog(repo Repository) Catalog {
	return &catalog{repo: repo}
}

func (c *catalog) Create(ctx context.Context, req CreateRequest) (*Service, error) {
	if !req.Type.Valid() {
		return nil, ErrInvalidType
	}

	s := &Service{
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	}

	if err := c.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *catalog) GetByID(ctx context.Context, id string) (*Service, error) {
	return c.repo.GetByID(ctx, id)
}

func (c *catalog) GetByIDs(ctx context.Context, ids []string) ([]*Service, error) {
	return c.repo.GetByIDs(ctx, ids)
}

func (c *catalog) List(ctx context.Context) ([]*Service, error) {
	return c.repo.List(ctx)
}

func (c *catalog) Update(ctx context.Context, id string, req UpdateRequest) (*Service, error) {
	s, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, ErrInvalidType
		}
		s.Type = *req.Type
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.Price != nil {
		s.Price = *req.Price
	}
	if req.IsAvailable != nil {
		s.IsAvailable = *req.IsAvailable
	}

	if err := c.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *catalog) Delete(ctx context.Context, id string) error {
	return c.repo.Delete(ctx, id)
}
