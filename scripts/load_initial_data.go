package main

import (
	"fmt"
	"log"
	"time"

	"workjunction-backend/internal/config"
	"workjunction-backend/internal/database"
	"workjunction-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Demo data structures kept close to the DB schema
type seedUser struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	Role        models.UserRole
}

type seedWorker struct {
	Email      string
	Bio        string
	HourlyRate float64
	City       string
	Status     models.VerificationStatus
	Timetable  map[models.Weekday][]models.TimeInterval
	Services   []seedService
}

type seedService struct {
	Name        string
	Category    string
	Description string
	Rate        *float64
}

var seedUsers = []seedUser{
	{Email: "anna.kovacs@example.com", Password: "customer-demo-1", FullName: "Anna Kovacs", PhoneNumber: "+44 7700 900101", Role: models.UserRoleCustomer},
	{Email: "ben.oduya@example.com", Password: "customer-demo-2", FullName: "Ben Oduya", Role: models.UserRoleCustomer},
	{Email: "marta.silva@example.com", Password: "worker-demo-1", FullName: "Marta Silva", PhoneNumber: "+44 7700 900201", Role: models.UserRoleWorker},
	{Email: "tomas.lind@example.com", Password: "worker-demo-2", FullName: "Tomas Lind", Role: models.UserRoleWorker},
	{Email: "review.agent@example.com", Password: "agent-demo-1", FullName: "Priya Raman", Role: models.UserRoleAgent},
}

var seedWorkers = []seedWorker{
	{
		Email:      "marta.silva@example.com",
		Bio:        "Certified electrician, 12 years of residential work.",
		HourlyRate: 45,
		City:       "Leeds",
		Status:     models.VerificationStatusVerified,
		Timetable: map[models.Weekday][]models.TimeInterval{
			models.Monday:    {{Start: "09:00", End: "17:00"}},
			models.Tuesday:   {{Start: "09:00", End: "17:00"}},
			models.Wednesday: {{Start: "09:00", End: "13:00"}},
			models.Thursday:  {{Start: "09:00", End: "17:00"}},
			models.Friday:    {{Start: "09:00", End: "15:00"}},
		},
		Services: []seedService{
			{Name: "Rewiring", Category: "electrical", Description: "Full and partial rewires with certification."},
			{Name: "Fuse box replacement", Category: "electrical", Description: "Consumer unit upgrades.", Rate: rate(60)},
		},
	},
	{
		Email:      "tomas.lind@example.com",
		Bio:        "Plumber and heating engineer.",
		HourlyRate: 40,
		City:       "Manchester",
		Status:     models.VerificationStatusPending,
		Timetable: map[models.Weekday][]models.TimeInterval{
			models.Saturday: {{Start: "08:00", End: "14:00"}},
			models.Sunday:   {{Start: "10:00", End: "14:00"}},
		},
		Services: []seedService{
			{Name: "Boiler service", Category: "plumbing", Description: "Annual boiler service and safety check."},
		},
	},
}

func rate(v float64) *float64 { return &v }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := loadUsers(db); err != nil {
		log.Fatalf("Failed to load users: %v", err)
	}
	if err := loadWorkers(db); err != nil {
		log.Fatalf("Failed to load worker profiles: %v", err)
	}
	if err := loadDemoBooking(db); err != nil {
		log.Fatalf("Failed to load demo booking: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func loadUsers(db *gorm.DB) error {
	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}

		user := models.User{
			Email:         u.Email,
			PasswordHash:  string(hash),
			FullName:      u.FullName,
			PhoneNumber:   u.PhoneNumber,
			Role:          u.Role,
			EmailVerified: true,
			IsActive:      true,
		}
		if err := db.Where("email = ?", u.Email).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
		log.Printf("User ready: %s (%s)", u.Email, u.Role)
	}
	return nil
}

func loadWorkers(db *gorm.DB) error {
	for _, w := range seedWorkers {
		var user models.User
		if err := db.Where("email = ?", w.Email).First(&user).Error; err != nil {
			return fmt.Errorf("find user %s: %w", w.Email, err)
		}

		timetable := models.NewWeeklyTimetable()
		for day, intervals := range w.Timetable {
			timetable[day] = intervals
		}

		profile := models.WorkerProfile{
			UserID:             user.ID,
			Bio:                w.Bio,
			HourlyRate:         w.HourlyRate,
			City:               w.City,
			VerificationStatus: w.Status,
			AvailabilityStatus: models.AvailabilityStatusAvailable,
			Timetable:          timetable,
			NonAvailability:    models.NonAvailabilitySlots{},
		}
		if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&profile).Error; err != nil {
			return fmt.Errorf("create worker profile for %s: %w", w.Email, err)
		}

		for _, s := range w.Services {
			svc := models.WorkerService{
				WorkerID:    profile.ID,
				Name:        s.Name,
				Category:    s.Category,
				Description: s.Description,
				Rate:        s.Rate,
			}
			if err := db.Where("worker_id = ? AND name = ?", profile.ID, s.Name).FirstOrCreate(&svc).Error; err != nil {
				return fmt.Errorf("create service %q for %s: %w", s.Name, w.Email, err)
			}
		}
		log.Printf("Worker profile ready: %s (%s, %d services)", w.Email, w.Status, len(w.Services))
	}
	return nil
}

// loadDemoBooking creates one confirmed booking next Monday so a fresh
// environment has something to show in both booking lists
func loadDemoBooking(db *gorm.DB) error {
	var customer models.User
	if err := db.Where("email = ?", "anna.kovacs@example.com").First(&customer).Error; err != nil {
		return fmt.Errorf("find demo customer: %w", err)
	}

	var worker models.WorkerProfile
	err := db.Joins("JOIN users ON users.id = worker_profiles.user_id").
		Where("users.email = ?", "marta.silva@example.com").
		First(&worker).Error
	if err != nil {
		return fmt.Errorf("find demo worker: %w", err)
	}

	var service models.WorkerService
	if err := db.Where("worker_id = ?", worker.ID).First(&service).Error; err != nil {
		return fmt.Errorf("find demo service: %w", err)
	}

	date := nextWeekday(time.Now(), time.Monday)
	serviceID := service.ID
	booking := models.Booking{
		CustomerID: customer.ID,
		WorkerID:   worker.ID,
		ServiceID:  &serviceID,
		Date:       date,
		StartTime:  "10:00",
		EndTime:    "12:00",
		Status:     models.BookingStatusConfirmed,
		Notes:      "Demo booking created by the seed script.",
	}
	err = db.Where("customer_id = ? AND worker_id = ? AND date = ?", customer.ID, worker.ID, date).
		FirstOrCreate(&booking).Error
	if err != nil {
		return fmt.Errorf("create demo booking: %w", err)
	}

	log.Printf("Demo booking ready: %s %s-%s (%s)", date.Format("2006-01-02"), booking.StartTime, booking.EndTime, booking.ID)
	return nil
}

func nextWeekday(from time.Time, day time.Weekday) time.Time {
	date := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		date = date.AddDate(0, 0, 1)
		if date.Weekday() == day {
			return date
		}
	}
	return date
}
