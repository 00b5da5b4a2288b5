package scheduler

import (
	"errors"
	"sync"
	"time"

	bookingModel "venue-booking/models/booking"
	venueModel "venue-booking/models/venue"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors mapped to HTTP statuses at the controller boundary.
var (
	ErrInvalidInterval  = errors.New("end date must be strictly after start date")
	ErrInvalidStatus    = errors.New("status must be either 'approved' or 'rejected'")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrVenueUnavailable = errors.New("the venue is already booked for these dates")
)

// Service owns the booking lifecycle: the availability check on creation and
// the status transitions that keep a venue's availability flag in sync with
// its bookings. Every mutation runs as one transaction.
type Service struct {
	db *gorm.DB

	// Per-venue advisory locks serialize the check-then-insert on a venue
	// within this process. Across processes the same window is closed by a
	// row lock on the venue, see lockVenueRow.
	venueLocks sync.Map
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateParams carries a booking submission after request validation. The
// interval is half-open: [StartDate, EndDate).
type CreateParams struct {
	UserID        uint
	VenueID       uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Category      string
	StartDate     time.Time
	EndDate       time.Time
}

func (s *Service) lockVenue(venueID uint) *sync.Mutex {
	v, _ := s.venueLocks.LoadOrStore(venueID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}

// lockVenueRow loads the venue under a row lock held for the rest of the
// transaction. On postgres this is SELECT ... FOR UPDATE, so a second
// replica's Create blocks here until the first commits and its overlap count
// then sees the committed booking. sqlite takes a database-level write lock
// on the first write and rejects FOR UPDATE syntax, so the clause is skipped
// there.
func lockVenueRow(tx *gorm.DB, venueID uint) (*venueModel.Venue, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var v venueModel.Venue
	if err := q.First(&v, venueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// HasConflict reports whether any non-rejected booking for the venue overlaps
// the proposed interval. Two half-open intervals overlap iff each starts
// before the other ends.
func (s *Service) HasConflict(tx *gorm.DB, venueID uint, start, end time.Time) (bool, error) {
	var count int64
	err := tx.Model(&bookingModel.Booking{}).
		Where("venue_id = ? AND status <> ?", venueID, bookingModel.BookingStatusRejected).
		Where("start_date < ? AND end_date > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create validates the interval, checks availability and writes the pending
// booking plus its status event in one transaction. The venue's row lock is
// held across check and insert; the per-venue mutex keeps in-process callers
// from queueing on the database.
func (s *Service) Create(params CreateParams) (*bookingModel.Booking, error) {
	if !params.EndDate.After(params.StartDate) {
		return nil, ErrInvalidInterval
	}

	mu := s.lockVenue(params.VenueID)
	defer mu.Unlock()

	var created bookingModel.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockVenueRow(tx, params.VenueID); err != nil {
			return err
		}

		conflict, err := s.HasConflict(tx, params.VenueID, params.StartDate, params.EndDate)
		if err != nil {
			return err
		}
		if conflict {
			return ErrVenueUnavailable
		}

		created = bookingModel.Booking{
			Reference:     uuid.NewString(),
			UserID:        params.UserID,
			VenueID:       params.VenueID,
			CustomerName:  params.CustomerName,
			CustomerEmail: params.CustomerEmail,
			CustomerPhone: params.CustomerPhone,
			Category:      params.Category,
			StartDate:     params.StartDate,
			EndDate:       params.EndDate,
			Status:        bookingModel.BookingStatusPending,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		event := bookingModel.BookingStatusEvent{
			BookingID: created.ID,
			Status:    bookingModel.BookingStatusPending,
			ChangedBy: params.UserID,
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		return nil, err
	}

	var loaded bookingModel.Booking
	if err := s.db.Preload("Venue").Preload("User").First(&loaded, created.ID).Error; err != nil {
		return nil, err
	}
	return &loaded, nil
}

// UpdateStatus applies an administrator decision. Booking and venue updates
// commit together or not at all; a missing venue skips the side effect
// without failing the transition.
func (s *Service) UpdateStatus(bookingID uint, target bookingModel.BookingStatus, changedBy uint) (*bookingModel.Booking, error) {
	if !target.IsDecision() {
		return nil, ErrInvalidStatus
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := tx.Model(&bookingModel.Booking{}).
			Where("id = ?", b.ID).
			Update("status", target).Error; err != nil {
			return err
		}

		venueStatus := venueModel.VenueStatusOccupied
		if target == bookingModel.BookingStatusRejected {
			venueStatus = venueModel.VenueStatusAvailable
		}

		var v venueModel.Venue
		if err := tx.First(&v, b.VenueID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Venue deleted out from under the booking: the status still
			// updates, only the availability side effect is skipped.
		} else if err := tx.Model(&venueModel.Venue{}).
			Where("id = ?", v.ID).
			Update("status", venueStatus).Error; err != nil {
			return err
		}

		event := bookingModel.BookingStatusEvent{
			BookingID: b.ID,
			Status:    target,
			ChangedBy: changedBy,
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		return nil, err
	}

	var loaded bookingModel.Booking
	if err := s.db.Preload("Venue").Preload("User").First(&loaded, bookingID).Error; err != nil {
		return nil, err
	}
	return &loaded, nil
}

// Delete removes a booking and releases its venue back to available in one
// transaction. The venue is freed unconditionally since its slot is vacated.
func (s *Service) Delete(bookingID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := tx.Where("booking_id = ?", b.ID).
			Delete(&bookingModel.BookingStatusEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&bookingModel.Booking{}, b.ID).Error; err != nil {
			return err
		}

		err := tx.Model(&venueModel.Venue{}).
			Where("id = ?", b.VenueID).
			Update("status", venueModel.VenueStatusAvailable).Error
		return err
	})
}
