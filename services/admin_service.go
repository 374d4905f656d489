package services

import (
	"fmt"
	"math"

	"hotel-booking-backend/auth"
	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

// AdminService serves the dashboard aggregates.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

type Overview struct {
	TotalUsers     int64   `json:"total_users"`
	TotalCustomers int64   `json:"total_customers"`
	TotalRooms     int64   `json:"total_rooms"`
	TotalBookings  int64   `json:"total_bookings"`
	TotalPayments  int64   `json:"total_payments"`
	TotalRevenue   float64 `json:"total_revenue"`
}

func (s *AdminService) Overview(p auth.Principal) (*Overview, error) {
	if !p.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrForbidden)
	}

	var o Overview
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.User{}, &o.TotalUsers},
		{&models.Customer{}, &o.TotalCustomers},
		{&models.Room{}, &o.TotalRooms},
		{&models.Booking{}, &o.TotalBookings},
		{&models.Payment{}, &o.TotalPayments},
	}
	for _, c := range counts {
		if err := s.DB.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count: %w", err)
		}
	}

	var revenue float64
	if err := s.DB.Model(&models.Payment{}).Select("COALESCE(SUM(amount), 0)").Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	o.TotalRevenue = math.Round(revenue*100) / 100
	return &o, nil
}

type Metrics struct {
	MonthlyBookings map[string]int     `json:"monthly_bookings"`
	MonthlyRevenue  map[string]float64 `json:"monthly_revenue"`
}

// Metrics groups bookings by check-in month and payments by payment month.
// Grouping happens in Go so the same query runs on MySQL and SQLite.
func (s *AdminService) Metrics(p auth.Principal) (*Metrics, error) {
	if !p.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrForbidden)
	}

	m := Metrics{
		MonthlyBookings: map[string]int{},
		MonthlyRevenue:  map[string]float64{},
	}

	var bookings []models.Booking
	if err := s.DB.Select("check_in").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	for _, b := range bookings {
		m.MonthlyBookings[b.CheckIn.Format("2006-01")]++
	}

	var payments []models.Payment
	if err := s.DB.Select("payment_date, amount").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	for _, pay := range payments {
		m.MonthlyRevenue[pay.PaymentDate.Format("2006-01")] += pay.Amount
	}
	return &m, nil
}
