package scheduler

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"venue-booking/database"
	bookingModel "venue-booking/models/booking"
	userModel "venue-booking/models/user"
	venueModel "venue-booking/models/venue"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:scheduler_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) userModel.User {
	t.Helper()

	u := userModel.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     fmt.Sprintf("ada_%s@example.com", uuid.NewString()),
		Password:  "irrelevant",
		Phone:     "0123456789",
		Role:      userModel.RoleUser,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedVenue(t *testing.T, db *gorm.DB, owner userModel.User) venueModel.Venue {
	t.Helper()

	v := venueModel.Venue{
		Name:        "Grand Hall",
		Description: "Main event hall",
		Status:      venueModel.VenueStatusAvailable,
		CreatedBy:   owner.ID,
	}
	require.NoError(t, db.Create(&v).Error)
	return v
}

func params(u userModel.User, v venueModel.Venue, start, end time.Time) CreateParams {
	return CreateParams{
		UserID:        u.ID,
		VenueID:       v.ID,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "0123456789",
		Category:      "wedding",
		StartDate:     start,
		EndDate:       end,
	}
}

func at(hour int) time.Time {
	return time.Date(2026, 9, 1, hour, 0, 0, 0, time.UTC)
}

func TestCreate_Success(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	created, err := svc.Create(params(u, v, at(10), at(12)))

	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusPending, created.Status)
	assert.NotEmpty(t, created.Reference)
	assert.Equal(t, v.ID, created.Venue.ID)
	assert.Equal(t, u.ID, created.User.ID)

	var events []bookingModel.BookingStatusEvent
	require.NoError(t, db.Where("booking_id = ?", created.ID).Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, bookingModel.BookingStatusPending, events[0].Status)
}

func TestCreate_EndNotAfterStart(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	_, err := svc.Create(params(u, v, at(12), at(12)))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = svc.Create(params(u, v, at(12), at(10)))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	var count int64
	require.NoError(t, db.Model(&bookingModel.Booking{}).Count(&count).Error)
	assert.Zero(t, count, "validation failures must not write bookings")
}

func TestCreate_VenueNotFound(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	p := params(u, v, at(10), at(12))
	p.VenueID = v.ID + 999

	_, err := svc.Create(p)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreate_OverlapConflict(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	_, err := svc.Create(params(u, v, at(10), at(12)))
	require.NoError(t, err)

	_, err = svc.Create(params(u, v, at(11), at(13)))
	assert.ErrorIs(t, err, ErrVenueUnavailable)

	var count int64
	require.NoError(t, db.Model(&bookingModel.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var reloaded venueModel.Venue
	require.NoError(t, db.First(&reloaded, v.ID).Error)
	assert.Equal(t, venueModel.VenueStatusAvailable, reloaded.Status, "conflict must leave the venue unchanged")
}

func TestCreate_ContainedIntervalConflicts(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	_, err := svc.Create(params(u, v, at(9), at(17)))
	require.NoError(t, err)

	// Fully inside the existing interval: neither boundary falls inside the
	// new one, which the naive boundary check would miss.
	_, err = svc.Create(params(u, v, at(11), at(12)))
	assert.ErrorIs(t, err, ErrVenueUnavailable)
}

func TestCreate_RejectedBookingDoesNotBlock(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	first, err := svc.Create(params(u, v, at(10), at(12)))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.ID, bookingModel.BookingStatusRejected, u.ID)
	require.NoError(t, err)

	_, err = svc.Create(params(u, v, at(11), at(13)))
	assert.NoError(t, err)
}

func TestCreate_AdjacentIntervalsDoNotConflict(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	_, err := svc.Create(params(u, v, at(10), at(12)))
	require.NoError(t, err)

	// Half-open intervals: a booking starting exactly at the previous end is
	// not a conflict.
	_, err = svc.Create(params(u, v, at(12), at(14)))
	assert.NoError(t, err)
}

func TestUpdateStatus_ApproveThenReject(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	created, err := svc.Create(params(u, v, at(10), at(12)))
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(created.ID, bookingModel.BookingStatusApproved, u.ID)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusApproved, approved.Status)
	assert.Equal(t, venueModel.VenueStatusOccupied, approved.Venue.Status)

	rejected, err := svc.UpdateStatus(created.ID, bookingModel.BookingStatusRejected, u.ID)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusRejected, rejected.Status)
	assert.Equal(t, venueModel.VenueStatusAvailable, rejected.Venue.Status)

	var events int64
	require.NoError(t, db.Model(&bookingModel.BookingStatusEvent{}).
		Where("booking_id = ?", created.ID).Count(&events).Error)
	assert.EqualValues(t, 3, events, "pending, approved and rejected events")
}

func TestUpdateStatus_InvalidTarget(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	created, err := svc.Create(params(u, v, at(10), at(12)))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(created.ID, bookingModel.BookingStatus("cancelled"), u.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	var reloaded bookingModel.Booking
	require.NoError(t, db.First(&reloaded, created.ID).Error)
	assert.Equal(t, bookingModel.BookingStatusPending, reloaded.Status, "invalid target must not mutate")

	// Pending is a valid stored status but not an assignable decision.
	_, err = svc.UpdateStatus(created.ID, bookingModel.BookingStatusPending, u.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_BookingNotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	_, err := svc.UpdateStatus(12345, bookingModel.BookingStatusApproved, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_VenueGoneSkipsSideEffect(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	created, err := svc.Create(params(u, v, at(10), at(12)))
	require.NoError(t, err)

	require.NoError(t, db.Delete(&venueModel.Venue{}, v.ID).Error)

	updated, err := svc.UpdateStatus(created.ID, bookingModel.BookingStatusApproved, u.ID)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusApproved, updated.Status)
}

func TestDelete_FreesVenue(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	created, err := svc.Create(params(u, v, at(10), at(12)))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(created.ID, bookingModel.BookingStatusApproved, u.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	var bookings int64
	require.NoError(t, db.Model(&bookingModel.Booking{}).Count(&bookings).Error)
	assert.Zero(t, bookings)

	var reloaded venueModel.Venue
	require.NoError(t, db.First(&reloaded, v.ID).Error)
	assert.Equal(t, venueModel.VenueStatusAvailable, reloaded.Status)
}

func TestDelete_FreesVenueFromAnyStatus(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	created, err := svc.Create(params(u, v, at(10), at(12)))
	require.NoError(t, err)

	require.NoError(t, db.Model(&venueModel.Venue{}).
		Where("id = ?", v.ID).
		Update("status", venueModel.VenueStatusMaintenance).Error)

	require.NoError(t, svc.Delete(created.ID))

	var reloaded venueModel.Venue
	require.NoError(t, db.First(&reloaded, v.ID).Error)
	assert.Equal(t, venueModel.VenueStatusAvailable, reloaded.Status)
}

func TestDelete_BookingNotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)

	assert.ErrorIs(t, svc.Delete(12345), ErrBookingNotFound)
}

func TestCreate_ConcurrentOverlap_OneWins(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)
	svc := NewService(db)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(params(u, v, at(10), at(12)))
		}(i)
	}
	wg.Wait()

	var conflicts, successes int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrVenueUnavailable):
			conflicts++
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent submission may win")
	assert.Equal(t, 1, conflicts)

	var count int64
	require.NoError(t, db.Model(&bookingModel.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "no double booking may persist")
}

// Two services over one database model two app replicas: the in-process
// mutexes are not shared, so only the storage layer stands between the
// replicas and a double booking.
func TestCreate_ConcurrentReplicas_NoDoubleBooking(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db)
	v := seedVenue(t, db, u)

	replicas := []*Service{NewService(db), NewService(db)}

	var wg sync.WaitGroup
	errs := make([]error, len(replicas))

	for i, svc := range replicas {
		wg.Add(1)
		go func(i int, svc *Service) {
			defer wg.Done()
			_, errs[i] = svc.Create(params(u, v, at(10), at(12)))
		}(i, svc)
	}
	wg.Wait()

	var successes int
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	assert.LessOrEqual(t, successes, 1, "at most one replica may win")

	var count int64
	require.NoError(t, db.Model(&bookingModel.Booking{}).Count(&count).Error)
	assert.EqualValues(t, successes, count, "every persisted booking belongs to a winning call")
	assert.LessOrEqual(t, count, int64(1), "overlapping bookings must never both persist")
}
