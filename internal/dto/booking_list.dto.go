package dto

import "time"

type BookingListDTO struct {
	ID         string    `json:"id"`
	CustomerID uint      `json:"customer_id"`
	ServiceID  uint      `json:"service_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	StartsAt   time.Time `json:"starts_at"`
	Status     string    `json:"status"`
	Price      float64   `json:"price"`
}
