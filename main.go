package main

import (
	"os"

	"stayhaven-server/routes"
	"stayhaven-server/storage"
	"stayhaven-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()
	storage.InitializeCache()

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}

		return tokenInput.RefreshToken
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Get("/me", accessTokenVerifierMiddleware, routes.GetCurrentUser)
	}

	properties := app.Party("/api/properties")
	{
		properties.Get("/", routes.GetAllProperties)
		properties.Get("/{id:uint}", routes.GetProperty)
		properties.Get("/{id:uint}/reviews", routes.ListPropertyReviews)
		properties.Post("/", accessTokenVerifierMiddleware, routes.CreateProperty)
		properties.Patch("/{id:uint}", accessTokenVerifierMiddleware, routes.UpdateProperty)
		properties.Delete("/{id:uint}", accessTokenVerifierMiddleware, routes.DeleteProperty)
	}

	bookings := app.Party("/api/bookings", accessTokenVerifierMiddleware)
	{
		bookings.Post("/", routes.CreateBooking)
		bookings.Get("/my-bookings", routes.GetMyBookings)
		bookings.Get("/host-bookings", routes.GetHostBookings)
		bookings.Get("/{id:uint}", routes.GetBookingByID)
		bookings.Delete("/{id:uint}", routes.DeleteBooking)
	}

	reviews := app.Party("/api/reviews", accessTokenVerifierMiddleware)
	{
		reviews.Post("/", routes.CreateReview)
		reviews.Delete("/{id:uint}", routes.DeleteReview)
	}

	wishlist := app.Party("/api/wishlist", accessTokenVerifierMiddleware)
	{
		wishlist.Post("/{propertyId:uint}", routes.AddToWishlist)
		wishlist.Delete("/{propertyId:uint}", routes.RemoveFromWishlist)
		wishlist.Get("/", routes.GetWishlist)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/users", routes.ListUsers)
		admin.Get("/stats", routes.GetPlatformStats)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	app.Listen(":" + port)
}
