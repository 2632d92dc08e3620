package location

import "github.com/shopstaff/staffpay-backend-go/internal/pkg/validator"

type CreateLocationRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
}

func (r *CreateLocationRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "is required"}}
	}
	return nil
}

type UpdateLocationRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type LocationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	IsActive    bool   `json:"is_active"`
}

func ToLocationResponse(l Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		DisplayName: l.DisplayName,
		IsActive:    l.IsActive,
	}
}
