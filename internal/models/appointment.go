package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BarbershopID uuid.UUID  `gorm:"type:uuid;index" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BarberID uuid.UUID `gorm:"type:uuid;index" json:"barber_id"`
	Barber   User      `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Client   User      `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uuid.UUID `gorm:"type:uuid" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Price is captured from the service at booking time. Later catalog
	// price changes never touch existing appointments.
	Price decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
