package main

import (
	"log"
	"net/http"

	_ "gymcore/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gymcore/internal/auth"
	"gymcore/internal/cache"
	"gymcore/internal/config"
	"gymcore/internal/db"
	"gymcore/internal/handler"
	"gymcore/internal/model"
	"gymcore/internal/repository"
	"gymcore/internal/router"
	"gymcore/internal/service"
)

// @title Gym Management API
// @version 1.0
// @description Gym management API with member, trainer, class, membership and attendance management behind JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Plan{},
		&model.Membership{},
		&model.Trainer{},
		&model.Class{},
		&model.Attendance{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)
	membershipRepo := repository.NewMembershipRepository(gormDB)
	trainerRepo := repository.NewTrainerRepository(gormDB)
	classRepo := repository.NewClassRepository(gormDB)
	attendanceRepo := repository.NewAttendanceRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, attendanceRepo)
	planService := service.NewPlanService(planRepo, cacheClient)
	membershipService := service.NewMembershipService(membershipRepo, planRepo, cacheClient)
	trainerService := service.NewTrainerService(trainerRepo, userRepo)
	classService := service.NewClassService(classRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	seedService := service.NewSeedService(roleRepo, planRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	planHandler := handler.NewPlanHandler(planService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	trainerHandler := handler.NewTrainerHandler(trainerService)
	classHandler := handler.NewClassHandler(classService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		planHandler,
		membershipHandler,
		trainerHandler,
		classHandler,
		attendanceHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
