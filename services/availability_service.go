package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService decides whether a room can be booked for a date range.
// It computes availability from interval overlap against existing bookings;
// the room status flag only blocks rooms taken out of service.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// CheckRoom returns nil when the room can be booked for [checkIn, checkOut).
// On a date conflict it returns ErrRoomUnavailable along with the conflicting
// booking. tx must be the caller's transaction handle so the decision is made
// against locked state.
func (s *AvailabilityService) CheckRoom(tx *gorm.DB, room *models.Room, checkIn, checkOut time.Time) (*models.Booking, error) {
	if room.Status == models.RoomStatusMaintenance {
		return nil, fmt.Errorf("%w (room %s is under maintenance)", ErrRoomUnavailable, room.RoomNumber)
	}

	var conflict models.Booking
	err := tx.
		Where("room_id = ? AND status <> ?", room.ID, models.BookingStatusCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Order("id ASC").
		First(&conflict).Error
	if err == nil {
		return &conflict, fmt.Errorf("%w (conflicts with booking %d)", ErrRoomUnavailable, conflict.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check availability for room %d: %w", room.ID, err)
	}
	return nil, nil
}
