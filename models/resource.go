package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is a single assistance-provider entry from the resource store.
// The engine borrows these read-only for the duration of a request.
type Resource struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Address  string             `bson:"address" json:"address"`
	City     string             `bson:"city" json:"city"`
	Services []string           `bson:"services" json:"services"`
	Details  string             `bson:"details,omitempty" json:"details,omitempty"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Website  string             `bson:"website,omitempty" json:"website,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// NewResource validates required fields at the store boundary so the
// matcher never has to defend against half-built records.
func NewResource(name, address, city string, services []string) (*Resource, error) {
	missing := []string{}
	if strings.TrimSpace(name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(city) == "" {
		missing = append(missing, "city")
	}
	if len(services) == 0 {
		missing = append(missing, "services")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("resource missing required fields: %v", missing)
	}

	now := time.Now()
	return &Resource{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Address:   address,
		City:      city,
		Services:  services,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FullText concatenates the searchable fields of the record, lower-cased.
func (r *Resource) FullText() string {
	parts := []string{r.Name, r.Category}
	parts = append(parts, r.Services...)
	if r.Details != "" {
		parts = append(parts, r.Details)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// ResourceSummary is the caller-facing projection of a Resource.
type ResourceSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	City     string   `json:"city"`
	Services []string `json:"services"`
	Phone    string   `json:"phone,omitempty"`
	Website  string   `json:"website,omitempty"`
}

// Summary projects the record into its caller-facing shape.
func (r *Resource) Summary() ResourceSummary {
	return ResourceSummary{
		ID:       r.ID.Hex(),
		Name:     r.Name,
		Address:  r.Address,
		City:     r.City,
		Services: r.Services,
		Phone:    r.Phone,
		Website:  r.Website,
	}
}
