package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("product name is required")

// Product is a food or drink item that can be bundled into a package.
// Immutable from the engine's point of view.
type Product struct {
	id              uuid.UUID
	name            string
	containsAlcohol bool
	photoURL        *string
	createdAt       time.Time
}

func NewProduct(name string, containsAlcohol bool, photoURL *string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return nil, ErrInvalidName
	}
	return &Product{
		id:              uuid.New(),
		name:            name,
		containsAlcohol: containsAlcohol,
		photoURL:        photoURL,
	}, nil
}

func ReconstructProduct(id uuid.UUID, name string, containsAlcohol bool, photoURL *string, createdAt time.Time) *Product {
	return &Product{
		id:              id,
		name:            name,
		containsAlcohol: containsAlcohol,
		photoURL:        photoURL,
		createdAt:       createdAt,
	}
}

func (p *Product) ID() uuid.UUID         { return p.id }
func (p *Product) Name() string          { return p.name }
func (p *Product) ContainsAlcohol() bool { return p.containsAlcohol }
func (p *Product) PhotoURL() *string     { return p.photoURL }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
