package services

import "bookit/models"

// Actor is the identity of the caller, resolved by the auth middleware and
// passed explicitly into every mutating operation.
type Actor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role int    `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return models.IsAdminRole(a.Role)
}
