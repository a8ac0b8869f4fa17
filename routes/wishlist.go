package routes

import (
	"stayhaven-server/models"
	"stayhaven-server/storage"
	"stayhaven-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm/clause"
)

// AddToWishlist inserts a saved property for the user. Adding an
// already-present property is a no-op success.
func AddToWishlist(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	propertyID := ctx.Params().GetUintDefault("propertyId", 0)

	if _, ok := storage.GetCachedProperty(propertyID); !ok {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
		return
	}

	item := models.WishlistItem{UserID: claims.ID, PropertyID: propertyID}
	if err := storage.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ids, err := wishlistPropertyIDs(claims.ID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"message": "Property added to wishlist",
		"data":    iris.Map{"wishlist": ids},
	})
}

// RemoveFromWishlist deletes the saved property; removing one that was
// never saved is still a success.
func RemoveFromWishlist(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	propertyID := ctx.Params().GetUintDefault("propertyId", 0)

	if err := storage.DB.
		Where("user_id = ? AND property_id = ?", claims.ID, propertyID).
		Delete(&models.WishlistItem{}).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ids, err := wishlistPropertyIDs(claims.ID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"message": "Property removed from wishlist",
		"data":    iris.Map{"wishlist": ids},
	})
}

// GetWishlist returns the user's saved properties with their summary
// fields. Entries whose property has been deleted are filtered out.
func GetWishlist(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var items []models.WishlistItem
	if err := storage.DB.
		Where("user_id = ?", claims.ID).
		Order("added_at DESC").
		Find(&items).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	properties := make([]*models.Property, 0, len(items))
	for _, item := range items {
		if property, ok := storage.GetCachedProperty(item.PropertyID); ok {
			properties = append(properties, property)
		}
	}

	ctx.JSON(iris.Map{
		"success": true,
		"results": len(properties),
		"data":    iris.Map{"wishlist": properties},
	})
}

func wishlistPropertyIDs(userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := storage.DB.Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Pluck("property_id", &ids).Error
	return ids, err
}
