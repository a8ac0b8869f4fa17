package services

import (
	"strings"

	"stayhaven-server/models"
	"stayhaven-server/storage"

	"gorm.io/gorm"
)

// RecomputeRating derives a property's aggregate from the full review
// set: the arithmetic mean of all ratings, or 0 when there are none.
func RecomputeRating(reviews []models.Review) (rating float64, count int) {
	count = len(reviews)
	if count == 0 {
		return 0, 0
	}
	var total float64
	for _, review := range reviews {
		total += float64(review.Rating)
	}
	return total / float64(count), count
}

// applyAggregate rereads the property's reviews and writes the
// aggregate back. Must run under the property lock and inside the
// transaction of the triggering mutation.
func applyAggregate(tx *gorm.DB, propertyID uint) error {
	var reviews []models.Review
	if err := tx.Where("property_id = ?", propertyID).Find(&reviews).Error; err != nil {
		return err
	}
	rating, count := RecomputeRating(reviews)
	return tx.Model(&models.Property{}).Where("id = ?", propertyID).
		Updates(map[string]interface{}{"rating": rating, "num_reviews": count}).Error
}

// AddReview persists a review and recomputes the property aggregate in
// one transaction, serialized per property.
func AddReview(db *gorm.DB, userID, propertyID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 || strings.TrimSpace(comment) == "" {
		return nil, ErrValidation
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

	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		review = models.Review{
			UserID:     userID,
			PropertyID: propertyID,
			Rating:     rating,
			Comment:    comment,
		}
		if createErr := tx.Create(&review).Error; createErr != nil {
			return createErr
		}
		return applyAggregate(tx, propertyID)
	})
	if err != nil {
		return nil, err
	}

	storage.InvalidateProperty(propertyID)
	return &review, nil
}

// DeleteReview removes a review (author or admin only) and recomputes
// the aggregate; with no reviews left the property resets to 0/0.
func DeleteReview(db *gorm.DB, reviewID, requesterID uint, role string) error {
	var review models.Review
	result := db.Where("id = ?", reviewID).Limit(1).Find(&review)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	if !CanDeleteReview(requesterID, role, &review) {
		return ErrForbidden
	}

	propertyID := review.PropertyID

	unlock := LockProperty(propertyID)
	defer unlock()

	err := db.Transaction(func(tx *gorm.DB) error {
		if deleteErr := tx.Delete(&review).Error; deleteErr != nil {
			return deleteErr
		}
		return applyAggregate(tx, propertyID)
	})
	if err != nil {
		return err
	}

	storage.InvalidateProperty(propertyID)
	return nil
}
