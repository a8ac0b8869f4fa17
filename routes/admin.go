package routes

import (
	"stayhaven-server/models"
	"stayhaven-server/storage"
	"stayhaven-server/utils"

	"github.com/kataras/iris/v12"
)

// ListUsers returns every registered user, newest first. Admin only;
// passwords are stripped by the model's marshaller.
func ListUsers(ctx iris.Context) {
	var users []models.User
	if err := storage.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"results": len(users),
		"data":    iris.Map{"users": users},
	})
}

// GetPlatformStats reports row counts for the main entities.
func GetPlatformStats(ctx iris.Context) {
	var users, properties, bookings, reviews int64

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &users},
		{&models.Property{}, &properties},
		{&models.Booking{}, &bookings},
		{&models.Review{}, &reviews},
	}
	for _, c := range counts {
		if err := storage.DB.Model(c.model).Count(c.dest).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data": iris.Map{
			"users":      users,
			"properties": properties,
			"bookings":   bookings,
			"reviews":    reviews,
		},
	})
}
