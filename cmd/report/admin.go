package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sangkips/bookstore-api/internal/application/service"
	"github.com/sangkips/bookstore-api/internal/config"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	"github.com/sangkips/bookstore-api/internal/infrastructure/database"
	"github.com/sangkips/bookstore-api/internal/infrastructure/repository"
	"github.com/sangkips/bookstore-api/pkg/logger"
	"github.com/sangkips/bookstore-api/pkg/utils"
	"github.com/spf13/cobra"
)

const minPasswordLength = 8

type registrar interface {
	Register(ctx context.Context, input *service.RegisterInput) (*entity.Admin, error)
}

type connectAdminsFunc func(cmd *cobra.Command) (registrar, func(), error)

func newCreateAdminCmd(connect connectAdminsFunc) *cobra.Command {
	input := &service.RegisterInput{}

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account that can sign in to the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.Email = strings.ToLower(strings.TrimSpace(input.Email))
			if input.Email == "" {
				return errors.New("--email is required")
			}
			if len(input.Password) < minPasswordLength {
				return fmt.Errorf("--password must be at least %d characters", minPasswordLength)
			}
			if strings.TrimSpace(input.FullName) == "" {
				input.FullName = "Store Admin"
			}

			svc, release, err := connect(cmd)
			if err != nil {
				return err
			}
			defer release()

			admin, err := svc.Register(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", admin.Email, admin.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "login email")
	cmd.Flags().StringVar(&input.Password, "password", "", "login password")
	cmd.Flags().StringVar(&input.FullName, "name", "", "display name")
	cmd.Flags().StringVar(&input.BusinessName, "business", "", "store name shown on the dashboard")
	cmd.Flags().StringVar(&input.PhoneNumber, "phone", "", "contact phone number")

	return cmd
}

func connectAdmins(cmd *cobra.Command) (registrar, func(), error) {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	cmd.SetContext(log.WithContext(cmd.Context()))

	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewAuthService(
		repository.NewAdminRepository(db),
		utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours),
	)

	release := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return svc, release, nil
}
