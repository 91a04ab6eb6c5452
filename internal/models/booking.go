package models

import "time"

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID uint `gorm:"index" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint `gorm:"index:idx_bookings_slot,priority:1" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// YYYY-MM-DD and HH:MM in the barbershop timezone
	Date string `gorm:"size:10;not null;index:idx_bookings_slot,priority:2" json:"date"`
	Time string `gorm:"size:5;not null;index:idx_bookings_slot,priority:3" json:"time"`

	Status string  `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Price  float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
