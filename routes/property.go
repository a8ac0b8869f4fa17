package routes

import (
	"encoding/json"

	"stayhaven-server/models"
	"stayhaven-server/services"
	"stayhaven-server/storage"
	"stayhaven-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreatePropertyInput struct {
	Title         string   `json:"title" validate:"required,max=256"`
	Description   string   `json:"description" validate:"required,max=5000"`
	Address       string   `json:"address" validate:"max=512"`
	City          string   `json:"city" validate:"required,max=256"`
	State         string   `json:"state" validate:"max=256"`
	Country       string   `json:"country" validate:"required,max=256"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	PricePerNight float64  `json:"pricePerNight" validate:"required,gt=0"`
	Photos        []string `json:"photos"`
	Amenities     []string `json:"amenities"`
	MaxGuests     int      `json:"maxGuests" validate:"required,gte=1,lte=50"`
	Type          string   `json:"type" validate:"required,oneof=apartment house villa cabin hotel other"`
	Rules         string   `json:"rules" validate:"max=5000"`
}

type UpdatePropertyInput struct {
	Title         string   `json:"title" validate:"max=256"`
	Description   string   `json:"description" validate:"max=5000"`
	Address       string   `json:"address" validate:"max=512"`
	City          string   `json:"city" validate:"max=256"`
	State         string   `json:"state" validate:"max=256"`
	Country       string   `json:"country" validate:"max=256"`
	PricePerNight float64  `json:"pricePerNight" validate:"gte=0"`
	Photos        []string `json:"photos"`
	Amenities     []string `json:"amenities"`
	MaxGuests     int      `json:"maxGuests" validate:"gte=0,lte=50"`
	Type          string   `json:"type" validate:"omitempty,oneof=apartment house villa cabin hotel other"`
	Rules         string   `json:"rules" validate:"max=5000"`
}

// GetAllProperties lists properties with basic filters: title search,
// city, type and a price range.
func GetAllProperties(ctx iris.Context) {
	query := storage.DB.Model(&models.Property{})

	if search := ctx.URLParamDefault("search", ""); search != "" {
		query = query.Where("lower(title) LIKE lower(?)", "%"+search+"%")
	}
	if city := ctx.URLParamDefault("city", ""); city != "" {
		query = query.Where("lower(city) = lower(?)", city)
	}
	if propertyType := ctx.URLParamDefault("type", ""); propertyType != "" {
		query = query.Where("type = ?", propertyType)
	}
	if minPrice, err := ctx.URLParamFloat64("minPrice"); err == nil && minPrice > 0 {
		query = query.Where("price_per_night >= ?", minPrice)
	}
	if maxPrice, err := ctx.URLParamFloat64("maxPrice"); err == nil && maxPrice > 0 {
		query = query.Where("price_per_night <= ?", maxPrice)
	}

	var properties []models.Property
	if err := query.Order("created_at DESC").Find(&properties).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"results": len(properties),
		"data":    iris.Map{"properties": properties},
	})
}

func GetProperty(ctx iris.Context) {
	propertyID := ctx.Params().GetUintDefault("id", 0)

	cached, ok := storage.GetCachedProperty(propertyID)
	if !ok {
		utils.CreateError(iris.StatusNotFound, "Not Found", "No property found with that ID", ctx)
		return
	}

	// Copy before attaching the host; the cached row is shared
	property := *cached
	var host models.User
	if err := storage.DB.Select("id, username, email, profile_picture").
		Where("id = ?", property.HostID).Limit(1).Find(&host).Error; err == nil && host.ID > 0 {
		property.Host = host
	}

	ctx.JSON(iris.Map{"success": true, "data": iris.Map{"property": &property}})
}

func CreateProperty(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property := models.Property{
		HostID:        claims.ID,
		Title:         input.Title,
		Description:   input.Description,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Country:       input.Country,
		Lat:           input.Lat,
		Lng:           input.Lng,
		PricePerNight: input.PricePerNight,
		Photos:        marshalStringList(input.Photos),
		Amenities:     marshalJSONList(input.Amenities),
		MaxGuests:     input.MaxGuests,
		Type:          input.Type,
		Rules:         input.Rules,
	}

	if err := storage.DB.Create(&property).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"success": true, "data": iris.Map{"property": property}})
}

func UpdateProperty(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	propertyID := ctx.Params().GetUintDefault("id", 0)

	var property models.Property
	result := storage.DB.Where("id = ?", propertyID).Limit(1).Find(&property)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "No property found with that ID", ctx)
		return
	}

	if !services.CanManageProperty(claims.ID, claims.Role, &property) {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "You do not have permission to update this property", ctx)
		return
	}

	var input UpdatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Title != "" {
		property.Title = input.Title
	}
	if input.Description != "" {
		property.Description = input.Description
	}
	if input.Address != "" {
		property.Address = input.Address
	}
	if input.City != "" {
		property.City = input.City
	}
	if input.State != "" {
		property.State = input.State
	}
	if input.Country != "" {
		property.Country = input.Country
	}
	if input.PricePerNight > 0 {
		property.PricePerNight = input.PricePerNight
	}
	if input.Photos != nil {
		property.Photos = marshalStringList(input.Photos)
	}
	if input.Amenities != nil {
		property.Amenities = marshalJSONList(input.Amenities)
	}
	if input.MaxGuests > 0 {
		property.MaxGuests = input.MaxGuests
	}
	if input.Type != "" {
		property.Type = input.Type
	}
	if input.Rules != "" {
		property.Rules = input.Rules
	}

	if err := storage.DB.Save(&property).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.InvalidateProperty(propertyID)

	ctx.JSON(iris.Map{"success": true, "data": iris.Map{"property": property}})
}

// DeleteProperty removes a listing. Bookings and wishlist entries
// referencing it are deleted with it; reviews are retained.
func DeleteProperty(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	propertyID := ctx.Params().GetUintDefault("id", 0)

	var property models.Property
	result := storage.DB.Where("id = ?", propertyID).Limit(1).Find(&property)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "No property found with that ID", ctx)
		return
	}

	if !services.CanManageProperty(claims.ID, claims.Role, &property) {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "You do not have permission to delete this property", ctx)
		return
	}

	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("property_id = ?", propertyID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&property).Error
	})
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.InvalidateProperty(propertyID)

	ctx.StatusCode(iris.StatusNoContent)
}

func marshalStringList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func marshalJSONList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}
