package routes

import (
	"errors"
	"time"

	"stayhaven-server/services"
	"stayhaven-server/storage"
	"stayhaven-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type CreateBookingInput struct {
	PropertyID uint      `json:"propertyId" validate:"required"`
	StartDate  time.Time `json:"startDate" validate:"required"`
	EndDate    time.Time `json:"endDate" validate:"required"`
}

func CreateBooking(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	booking, err := services.CreateBooking(storage.DB, claims.ID, input.PropertyID, input.StartDate, input.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		case errors.Is(err, services.ErrInvalidRange):
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "End date must be after start date", ctx)
		case errors.Is(err, services.ErrDateConflict):
			utils.CreateError(iris.StatusBadRequest, "Date Conflict", "Property is already booked for these dates", ctx)
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"success": true, "data": iris.Map{"booking": booking}})
}

func GetMyBookings(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	bookings, err := services.ListUserBookings(storage.DB, claims.ID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"results": len(bookings),
		"data":    iris.Map{"bookings": bookings},
	})
}

func GetHostBookings(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	bookings, err := services.ListHostBookings(storage.DB, claims.ID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"results": len(bookings),
		"data":    iris.Map{"bookings": bookings},
	})
}

func GetBookingByID(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	bookingID := ctx.Params().GetUintDefault("id", 0)

	booking, err := services.GetBooking(storage.DB, bookingID, claims.ID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.CreateError(iris.StatusNotFound, "Not Found", "Booking not found", ctx)
		case errors.Is(err, services.ErrForbidden):
			utils.CreateError(iris.StatusForbidden, "Forbidden", "You do not have permission to view this booking", ctx)
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	ctx.JSON(iris.Map{"success": true, "data": iris.Map{"booking": booking}})
}

func DeleteBooking(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	bookingID := ctx.Params().GetUintDefault("id", 0)

	err := services.CancelBooking(storage.DB, bookingID, claims.ID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.CreateError(iris.StatusNotFound, "Not Found", "No booking found", ctx)
		case errors.Is(err, services.ErrForbidden):
			utils.CreateError(iris.StatusForbidden, "Forbidden", "Only the person who booked this can cancel it", ctx)
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}
