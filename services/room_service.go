package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomFilter narrows List. Zero values mean "no filter".
type RoomFilter struct {
	Type     string
	Status   string
	MinPrice *float64
	MaxPrice *float64
}

func (s *RoomService) List(filter RoomFilter) ([]models.Room, error) {
	query := s.DB.Model(&models.Room{})
	if t := strings.TrimSpace(filter.Type); t != "" {
		query = query.Where("type = ?", t)
	}
	if st := strings.TrimSpace(filter.Status); st != "" {
		query = query.Where("status = ?", st)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var rooms []models.Room
	if err := query.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

func (s *RoomService) Get(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room_number is required", ErrValidation)
	}
	if !models.ValidRoomType(room.Type) {
		return fmt.Errorf("%w: type must be single, double or suite", ErrValidation)
	}
	if room.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if err := s.DB.Create(room).Error; err != nil {
		return translateDuplicate(err, fmt.Sprintf("room number %q", room.RoomNumber))
	}
	return nil
}

// Update applies a partial update. id/timestamps are stripped so clients
// cannot rewrite them.
func (s *RoomService) Update(id uint, updates map[string]interface{}) (*models.Room, error) {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	if t, ok := updates["type"].(string); ok && !models.ValidRoomType(t) {
		return nil, fmt.Errorf("%w: type must be single, double or suite", ErrValidation)
	}
	if p, ok := updates["price"].(float64); ok && p <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if st, ok := updates["status"].(string); ok {
		switch st {
		case models.RoomStatusAvailable, models.RoomStatusBooked, models.RoomStatusMaintenance:
		default:
			return nil, fmt.Errorf("%w: status must be available, booked or maintenance", ErrValidation)
		}
	}

	room, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.Model(room).Updates(updates).Error; err != nil {
			return nil, translateDuplicate(err, "room number")
		}
	}
	return room, nil
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
