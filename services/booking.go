package services

import (
	"time"

	"stayhaven-server/models"

	"gorm.io/gorm"
)

// Overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not overlap, so a
// checkout day may equal another booking's check-in day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasBookingConflict reports whether any non-cancelled booking for the
// property overlaps the requested range. Callers must validate
// start < end first.
func HasBookingConflict(db *gorm.DB, propertyID uint, start, end time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("property_id = ? AND status <> ? AND start_date < ? AND end_date > ?",
			propertyID, models.BookingStatusCancelled, end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Nights counts billable nights as ceil((end - start) / 24h).
func Nights(start, end time.Time) int {
	d := end.Sub(start)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// CreateBooking runs the full creation flow: range validation, conflict
// check, price derivation and insert. The conflict check and insert are
// serialized per property and share one transaction, so two concurrent
// requests for overlapping ranges cannot both pass the check.
func CreateBooking(db *gorm.DB, userID, propertyID uint, start, end time.Time) (*models.Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}

	var property models.Property
	result := db.Where("id = ?", propertyID).Limit(1).Find(&property)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	unlock := LockProperty(propertyID)
	defer unlock()

	var booking models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		conflict, conflictErr := HasBookingConflict(tx, propertyID, start, end)
		if conflictErr != nil {
			return conflictErr
		}
		if conflict {
			return ErrDateConflict
		}

		booking = models.Booking{
			PropertyID: propertyID,
			UserID:     userID,
			StartDate:  start,
			EndDate:    end,
			TotalPrice: float64(Nights(start, end)) * property.PricePerNight,
			Status:     models.BookingStatusConfirmed,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// GetBooking loads a booking with its property and enforces the view
// policy: the booker, the property's host, or an admin.
func GetBooking(db *gorm.DB, bookingID, requesterID uint, role string) (*models.Booking, error) {
	var booking models.Booking
	result := db.Preload("Property").Preload("User").Where("id = ?", bookingID).Limit(1).Find(&booking)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	hostID := uint(0)
	if booking.Property != nil {
		hostID = booking.Property.HostID
	}
	if !CanViewBooking(requesterID, role, &booking, hostID) {
		return nil, ErrForbidden
	}

	return &booking, nil
}

// CancelBooking hard-deletes the booking row. Only the booker or an
// admin may cancel; the property's host can view but not cancel.
// Removing the row frees the date range for future conflict checks.
func CancelBooking(db *gorm.DB, bookingID, requesterID uint, role string) error {
	var booking models.Booking
	result := db.Where("id = ?", bookingID).Limit(1).Find(&booking)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	if !CanCancelBooking(requesterID, role, &booking) {
		return ErrForbidden
	}

	return db.Unscoped().Delete(&booking).Error
}

// ListUserBookings returns the user's bookings with property summaries,
// newest created first.
func ListUserBookings(db *gorm.DB, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Preload("Property").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ListHostBookings returns bookings across all properties owned by the
// host, newest start date first.
func ListHostBookings(db *gorm.DB, hostID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.
		Joins("JOIN properties p ON p.id = bookings.property_id").
		Where("p.host_id = ?", hostID).
		Preload("Property").
		Preload("User").
		Order("bookings.start_date DESC").
		Find(&bookings).Error
	return bookings, err
}
