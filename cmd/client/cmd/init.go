// cmd/client/cmd/init.go
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"hostelmate/cmd/client/cmd/admin"
	"hostelmate/cmd/client/cmd/auth"
	"hostelmate/cmd/client/cmd/booking"
	"hostelmate/cmd/client/cmd/checkin"
	"hostelmate/cmd/client/cmd/extras"
	"hostelmate/cmd/client/cmd/profile"
	"hostelmate/cmd/client/cmd/request"
	"hostelmate/cmd/client/cmd/room"
	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Полный сброс локальных данных",
	Long: `Команда reset удаляет все локальные данные приложения:
текущего пользователя, флаг входа и историю бронирований.

Операция необратима.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Print("Удалить все локальные данные? [y/N]: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
			fmt.Println("Отменено.")
			return nil
		}

		if err := app.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка сброса: %w", err)
		}

		fmt.Println("✅ Локальные данные удалены.")
		return nil
	},
}

func init() {
	// Добавляем команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)

	// Номера и бронирования
	rootCmd.AddCommand(room.RoomsCmd)
	room.RoomsCmd.AddCommand(room.ListCmd)
	room.RoomsCmd.AddCommand(room.ShowCmd)

	rootCmd.AddCommand(booking.BookingCmd)
	booking.BookingCmd.AddCommand(booking.CreateCmd)
	booking.BookingCmd.AddCommand(booking.ListCmd)

	// Профиль и гостевые сервисы
	rootCmd.AddCommand(profile.ProfileCmd)

	rootCmd.AddCommand(request.RequestCmd)
	request.RequestCmd.AddCommand(request.CreateCmd)
	request.RequestCmd.AddCommand(request.ListCmd)

	rootCmd.AddCommand(extras.ExtrasCmd)
	extras.ExtrasCmd.AddCommand(extras.ListCmd)
	extras.ExtrasCmd.AddCommand(extras.OrderCmd)

	rootCmd.AddCommand(checkin.CheckinCmd)

	// Панель управления
	rootCmd.AddCommand(admin.AdminCmd)

	rootCmd.AddCommand(resetCmd)
}
