package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"guest_management/internal/repository"
	"guest_management/internal/service"
	"guest_management/internal/utils"
)

var (
	adminEmail    string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "管理員帳號相關操作",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "建立管理員帳號",
	Long: `建立可登入 API 的管理員帳號。

範例:
  guestd admin create --email admin@example.com --password 's3cret-pass'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(adminPassword) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}

		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		auth := service.NewAuthService(repository.NewAdminRepository(db), utils.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.TokenTTL()))
		admin, err := auth.CreateAdmin(cmd.Context(), adminEmail, adminPassword)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created admin %d (%s)\n", admin.ID, admin.Email)
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "管理員 email")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "管理員密碼（至少 8 個字元）")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
}
