package models

import (
	"github.com/Agentronic/booking-agent-v2/internal/domain"
)

// BookingResponse ответ с данными бронирования.
// Имена полей зафиксированы контрактом tool-интерфейса.
type BookingResponse struct {
	BookingID       int64  `json:"booking_id"`
	Date            string `json:"date"`       // "2025-04-01"
	StartTime       string `json:"start_time"` // "10:00"
	EndTime         string `json:"end_time"`   // "11:00"
	DurationMinutes int    `json:"duration_minutes"`
	ClientID        string `json:"client_id"`
	ServiceName     string `json:"service_name"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		BookingID:       b.ID,
		Date:            b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		ClientID:        b.ClientID,
		ServiceName:     b.ServiceName,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if br := FromDomainBooking(b); br != nil {
			resp.Bookings = append(resp.Bookings, *br)
		}
	}

	return resp
}
