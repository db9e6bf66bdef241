package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gymcore/internal/auth"
	"gymcore/internal/config"
	apperrors "gymcore/internal/errors"
	"gymcore/internal/handler"
	"gymcore/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	planHandler *handler.PlanHandler,
	membershipHandler *handler.MembershipHandler,
	trainerHandler *handler.TrainerHandler,
	classHandler *handler.ClassHandler,
	attendanceHandler *handler.AttendanceHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/seed/defaults", seedHandler.SeedDefaults)

	// Secured routes (require a bearer token). A request without an
	// Authorization header is 401; a bad or expired token is 403.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrMissingToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	}))

	// User routes
	users := secured.Group("/user")
	users.POST("", userHandler.Create, auth.RequireRoles(model.RoleAdmin))
	users.GET("", userHandler.List, auth.RequireRoles(model.RoleAdmin, model.RoleTrainer))
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, auth.RequireRoles(model.RoleAdmin))
	users.GET("/:id/attendance", userHandler.Attendance)

	// Plan routes
	secured.GET("/plan", planHandler.List)

	// Membership routes
	memberships := secured.Group("/membership", auth.RequireRoles(model.RoleAdmin, model.RoleTrainer))
	memberships.GET("", membershipHandler.List)
	memberships.GET("/:id", membershipHandler.Get)
	memberships.GET("/user/:userId", membershipHandler.Current)
	memberships.POST("", membershipHandler.Create)
	memberships.PUT("/:userId/plan", membershipHandler.ChangePlan)
	memberships.DELETE("/:id", membershipHandler.Cancel)

	// Trainer routes
	trainers := secured.Group("/trainer")
	trainers.POST("", trainerHandler.Create, auth.RequireRoles(model.RoleAdmin))
	trainers.GET("", trainerHandler.List)
	trainers.GET("/:id", trainerHandler.Get)
	trainers.PUT("/:id", trainerHandler.Update)
	trainers.DELETE("/:id", trainerHandler.Delete, auth.RequireRoles(model.RoleAdmin))

	// Class routes
	classes := secured.Group("/class")
	classes.GET("", classHandler.List, auth.RequireRoles(model.RoleAdmin))
	classes.GET("/:id", classHandler.Get)
	classes.GET("/trainer/:id", classHandler.ListByTrainer, auth.RequireRoles(model.RoleTrainer))
	classes.POST("", classHandler.Create, auth.RequireRoles(model.RoleTrainer))
	classes.PUT("/:id", classHandler.Update, auth.RequireRoles(model.RoleTrainer))
	classes.DELETE("/:id", classHandler.Delete, auth.RequireRoles(model.RoleTrainer))

	// Attendance routes
	attendance := secured.Group("/attendance")
	attendance.GET("", attendanceHandler.List)
	attendance.GET("/member/:id", attendanceHandler.ListByMember)
	attendance.POST("", attendanceHandler.Mark)
	attendance.PUT("/:id", attendanceHandler.Update)
	attendance.DELETE("/:id", attendanceHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
