package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние сессии",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		// Экранное чтение: при сбое хранилища показываем "гостя"
		u := app.Display().GetUser(cmd.Context())
		if u == nil || !app.Display().IsLoggedIn(cmd.Context()) {
			fmt.Println("Вход не выполнен. Вы просматриваете приложение как гость.")
			return nil
		}

		fmt.Printf("Вы вошли как %s (%s)\n", u.Name, u.Email)
		if u.IsAdmin {
			fmt.Println("Роль: администратор")
		}
		return nil
	},
}
