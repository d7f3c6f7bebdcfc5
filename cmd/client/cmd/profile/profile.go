// cmd/client/cmd/profile/profile.go
package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
)

// ProfileCmd показывает профиль пользователя и сводку его данных.
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Мой профиль",
	Long:  `Данные текущего пользователя и краткая сводка по бронированиям.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		// Экранное чтение: при сбое хранилища показываем "гостя"
		u := app.Display().GetUser(cmd.Context())
		if u == nil || !app.Display().IsLoggedIn(cmd.Context()) {
			fmt.Println("Вход не выполнен. Вы просматриваете приложение как гость.")
			fmt.Println("Войти: hostelmate auth login")
			return nil
		}

		fmt.Println("=== Профиль ===")
		fmt.Println()
		fmt.Printf("Имя: %s\n", u.Name)
		fmt.Printf("Email: %s\n", u.Email)
		if u.IsAdmin {
			fmt.Println("Роль: администратор")
		} else {
			fmt.Println("Роль: гость")
		}

		bookings := app.Display().ListBookings(cmd.Context())
		active := 0
		for _, b := range bookings {
			if b.Status != "cancelled" {
				active++
			}
		}
		fmt.Println()
		fmt.Printf("Бронирований: %d (активных: %d)\n", len(bookings), active)
		return nil
	},
}
