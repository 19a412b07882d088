package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleOwner   = "OWNER"
	RoleManager = "MANAGER"
	RoleBarber  = "BARBER"
	RoleClient  = "CLIENT"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Nil for clients; barbers, managers and owners belong to a shop.
	BarbershopID *uuid.UUID  `gorm:"type:uuid;index" json:"barbershop_id"`
	Barbershop   *Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'CLIENT'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
