package routes

import (
	"errors"

	"stayhaven-server/models"
	"stayhaven-server/services"
	"stayhaven-server/storage"
	"stayhaven-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type CreateReviewInput struct {
	PropertyID uint   `json:"propertyId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required,max=1000"`
}

func CreateReview(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	review, err := services.AddReview(storage.DB, claims.ID, input.PropertyID, input.Rating, input.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		case errors.Is(err, services.ErrValidation):
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "Rating must be 1-5 and comment must not be empty", ctx)
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"success": true, "data": iris.Map{"review": review}})
}

// ListPropertyReviews is public: reviews for a property, newest first,
// with the reviewer joined in.
func ListPropertyReviews(ctx iris.Context) {
	propertyID := ctx.Params().GetUintDefault("id", 0)
	if propertyID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid property ID", ctx)
		return
	}

	var reviews []models.Review
	if err := storage.DB.Preload("User").
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"results": len(reviews),
		"data":    iris.Map{"reviews": reviews},
	})
}

func DeleteReview(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	reviewID := ctx.Params().GetUintDefault("id", 0)

	err := services.DeleteReview(storage.DB, reviewID, claims.ID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.CreateError(iris.StatusNotFound, "Not Found", "Review not found", ctx)
		case errors.Is(err, services.ErrForbidden):
			utils.CreateError(iris.StatusForbidden, "Forbidden", "Not authorized", ctx)
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}
