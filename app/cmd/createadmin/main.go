package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"tripshare/app/config"
	"tripshare/app/domain"
	"tripshare/app/driver/postgres"
	"tripshare/app/utils/logger"
	"tripshare/app/utils/security"
)

func main() {
	var (
		email       = flag.String("email", "", "Email address for the admin account")
		password    = flag.String("password", "", "Password for the admin account (or set ADMIN_PASSWORD)")
		displayName = flag.String("display-name", "Administrator", "Display name for the admin account")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	if *password == "" {
		*password = os.Getenv("ADMIN_PASSWORD")
	}
	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: createadmin -email admin@example.com -password secret [-display-name Name]")
		os.Exit(2)
	}
	if !strings.Contains(*email, "@") {
		fmt.Fprintf(os.Stderr, "invalid email address: %s\n", *email)
		os.Exit(2)
	}
	if len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "password must be at least 8 characters")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	hasher, err := security.NewTokenHasher(cfg.HashCost)
	if err != nil {
		appLogger.Error("Failed to create hasher", "error", err)
		os.Exit(1)
	}

	passwordHash, err := hasher.Hash(*password)
	if err != nil {
		appLogger.Error("Failed to hash password", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create database connection", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db.Pool(), appLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := &domain.User{
		ID:           uuid.New(),
		Email:        *email,
		DisplayName:  *displayName,
		PasswordHash: passwordHash,
		Role:         domain.UserRoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			appLogger.Error("an account with this email already exists", "email", *email)
			os.Exit(1)
		}
		appLogger.Error("Failed to create admin user", "email", *email, "error", err)
		os.Exit(1)
	}

	appLogger.Info("admin user created", "email", *email, "user_id", user.ID)
}
