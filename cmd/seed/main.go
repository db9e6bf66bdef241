// Command seed writes the fixed reference data (roles, plans) and an initial
// administrator account without going through the HTTP surface.
package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"gymcore/internal/config"
	"gymcore/internal/db"
	"gymcore/internal/model"
	"gymcore/internal/repository"
	"gymcore/internal/service"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

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

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	seedService := service.NewSeedService(roleRepo, planRepo)
	roles, plans, err := seedService.SeedDefaults(ctx)
	if err != nil {
		log.Fatalf("seed reference data: %v", err)
	}
	log.Printf("seeded %d roles, %d plans", roles, plans)

	adminEmail := getEnv("ADMIN_EMAIL", "admin@gym.local")
	adminPassword := getEnv("ADMIN_PASSWORD", "changeme123")

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Printf("admin %s already exists, skipping", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	admin := &model.User{
		FullName:     "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hash),
		RoleID:       uint(model.RoleAdmin),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("created admin %s", adminEmail)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
