package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из приложения",
	Long: `Удаляет текущего пользователя и сбрасывает флаг входа.
История бронирований при выходе сохраняется.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.Users().Logout(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("✅ Выход выполнен.")
		return nil
	},
}
