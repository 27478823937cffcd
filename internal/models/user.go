package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User replica la identidad gestionada por el proveedor externo de autenticación.
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ExternalAuthID string             `json:"externalAuthId" bson:"externalAuthId"`
	Email          string             `json:"email" bson:"email"`
	FirstName      string             `json:"firstName" bson:"firstName"`
	LastName       string             `json:"lastName" bson:"lastName"`
	Role           string             `json:"role" bson:"role"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin indica si el usuario puede entrar al área de administración.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin && u.IsActive
}

type UserInput struct {
	ExternalAuthID string `json:"externalAuthId" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"firstName" validate:"required,max=50"`
	LastName       string `json:"lastName" validate:"required,max=50"`
	Role           string `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive       *bool  `json:"isActive"`
}

type UserPatch struct {
	Email     *string `json:"email" validate:"omitnil,email"`
	FirstName *string `json:"firstName" validate:"omitnil,min=1,max=50"`
	LastName  *string `json:"lastName" validate:"omitnil,min=1,max=50"`
	Role      *string `json:"role" validate:"omitnil,oneof=admin user"`
	IsActive  *bool   `json:"isActive"`
}

func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil &&
		p.Role == nil && p.IsActive == nil
}
