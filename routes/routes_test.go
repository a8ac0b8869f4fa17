package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"stayhaven-server/models"
	"stayhaven-server/storage"
	"stayhaven-server/utils"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// buildTestApp creates a minimal iris app with the booking, review and
// wishlist routes behind a JWT verifier, backed by an in-memory sqlite
// database.
func buildTestApp(t *testing.T) *iris.Application {
	t.Helper()
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	storage.PerformMigrations(db)
	storage.DB = db
	storage.InitializeCache()

	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	properties := app.Party("/api/properties")
	{
		properties.Get("/", GetAllProperties)
		properties.Get("/{id:uint}", GetProperty)
		properties.Get("/{id:uint}/reviews", ListPropertyReviews)
		properties.Delete("/{id:uint}", accessTokenVerifierMiddleware, DeleteProperty)
	}

	bookings := app.Party("/api/bookings", accessTokenVerifierMiddleware)
	{
		bookings.Post("/", CreateBooking)
		bookings.Get("/my-bookings", GetMyBookings)
		bookings.Get("/host-bookings", GetHostBookings)
		bookings.Get("/{id:uint}", GetBookingByID)
		bookings.Delete("/{id:uint}", DeleteBooking)
	}

	reviews := app.Party("/api/reviews", accessTokenVerifierMiddleware)
	{
		reviews.Post("/", CreateReview)
		reviews.Delete("/{id:uint}", DeleteReview)
	}

	wishlist := app.Party("/api/wishlist", accessTokenVerifierMiddleware)
	{
		wishlist.Post("/{propertyId:uint}", AddToWishlist)
		wishlist.Delete("/{propertyId:uint}", RemoveFromWishlist)
		wishlist.Get("/", GetWishlist)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/users", ListUsers)
		admin.Get("/stats", GetPlatformStats)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	return app
}

// signTestToken returns a signed JWT for the given user id and role.
func signTestToken(t *testing.T, id uint, role string) string {
	t.Helper()
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, err := signer.Sign(utils.AccessToken{ID: id, Role: role})
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return string(token)
}

func doJSON(t *testing.T, app *iris.Application, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", resp.Body.String(), err)
	}
}

func createUser(t *testing.T, username, role string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     role,
	}
	if err := storage.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

func createProperty(t *testing.T, hostID uint, pricePerNight float64) *models.Property {
	t.Helper()
	property := models.Property{
		HostID:        hostID,
		Title:         "Route test listing",
		Description:   "Listing used in route tests",
		City:          "Madrid",
		Country:       "Spain",
		PricePerNight: pricePerNight,
		MaxGuests:     2,
		Type:          "house",
	}
	if err := storage.DB.Create(&property).Error; err != nil {
		t.Fatalf("failed to create property: %v", err)
	}
	return &property
}
