package services

import "stayhaven-server/models"

const RoleAdmin = "admin"

// CanViewBooking: the booker, the property's host, or an admin.
func CanViewBooking(userID uint, role string, booking *models.Booking, hostID uint) bool {
	return booking.UserID == userID || hostID == userID || role == RoleAdmin
}

// CanCancelBooking: the booker or an admin. A host can view bookings
// on their property but cannot cancel them.
func CanCancelBooking(userID uint, role string, booking *models.Booking) bool {
	return booking.UserID == userID || role == RoleAdmin
}

// CanDeleteReview: the author or an admin.
func CanDeleteReview(userID uint, role string, review *models.Review) bool {
	return review.UserID == userID || role == RoleAdmin
}

// CanManageProperty: the host or an admin.
func CanManageProperty(userID uint, role string, property *models.Property) bool {
	return property.HostID == userID || role == RoleAdmin
}
