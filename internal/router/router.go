package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gatepass/internal/config"
	"gatepass/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	attendeeHandler *handler.AttendeeHandler,
	scanHandler *handler.ScanHandler,
	badgeHandler *handler.BadgeHandler,
	importExportHandler *handler.ImportExportHandler,
	layoutHandler *handler.LayoutHandler,
	wsHandler *handler.WSHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Dashboard change-notification socket; public like the client dashboard.
	e.GET("/ws", wsHandler.Subscribe)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/register", attendeeHandler.Register)
	api.GET("/attendees", attendeeHandler.List)
	api.GET("/badge/:id", badgeHandler.RenderData)

	// Admin routes (require JWT authentication)
	admin := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	admin.PUT("/attendees/:id", attendeeHandler.Update)
	admin.DELETE("/attendees/:id", attendeeHandler.Delete)
	admin.POST("/attendees/:id/scan", attendeeHandler.MarkScanned)
	admin.POST("/scan/verify", scanHandler.VerifyScan)
	admin.POST("/import", importExportHandler.Import)
	admin.GET("/export", importExportHandler.Export)
	admin.GET("/layout", layoutHandler.Get)
	admin.PUT("/layout", layoutHandler.Save)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
