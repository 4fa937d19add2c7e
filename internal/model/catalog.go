package model

import "github.com/google/uuid"

// PanelProduct is a reusable panel product preset.
type PanelProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Width       float64         `json:"width"`     // manufactured width in mm
	Thickness   float64         `json:"thickness"` // mm
	Material    string          `json:"material"`
	Application ApplicationType `json:"application"`
}

// NewPanelProduct creates a PanelProduct with a generated ID.
func NewPanelProduct(name string, width, thickness float64, material string, app ApplicationType) PanelProduct {
	return PanelProduct{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Width:       width,
		Thickness:   thickness,
		Material:    material,
		Application: app,
	}
}

// Catalog holds the user's saved panel products.
type Catalog struct {
	Products []PanelProduct `json:"products"`
}

// DefaultCatalog returns a catalog populated with common panel products.
func DefaultCatalog() Catalog {
	return Catalog{
		Products: []PanelProduct{
			NewPanelProduct("Wall panel 1150/100", 1150, 100, "Sandwich", ApplicationWall),
			NewPanelProduct("Wall panel 1150/150", 1150, 150, "Sandwich", ApplicationWall),
			NewPanelProduct("Ceiling panel 1150/100", 1150, 100, "Sandwich", ApplicationCeiling),
			NewPanelProduct("Wall panel 1150/80", 1150, 80, "Sandwich", ApplicationWall),
		},
	}
}

// FindByID returns a pointer to the product with the given ID, or nil.
func (c *Catalog) FindByID(id string) *PanelProduct {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first product with the given name, or nil.
func (c *Catalog) FindByName(name string) *PanelProduct {
	for i := range c.Products {
		if c.Products[i].Name == name {
			return &c.Products[i]
		}
	}
	return nil
}

// Names returns product names for display lists.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Products))
	for i, p := range c.Products {
		names[i] = p.Name
	}
	return names
}
