// cmd/client/cmd/booking/list.go
package booking

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
	"hostelmate/internal/domain/booking"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Мои бронирования",
	Long:  `История бронирований в порядке создания. История сохраняется и после выхода.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		// Экранное чтение: при сбое хранилища показываем пустой список
		bookings := app.Display().ListBookings(cmd.Context())

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(bookings)
		}

		if len(bookings) == 0 {
			fmt.Println("У вас пока нет бронирований.")
			fmt.Println("Посмотреть номера: hostelmate rooms list")
			return nil
		}

		fmt.Println("=== Мои бронирования ===")
		fmt.Println()
		for i, b := range bookings {
			fmt.Printf("%d. %s\n", i+1, b.RoomTitle)
			fmt.Printf("   %s - %s • %d ₽ • %s\n", b.CheckIn, b.CheckOut, b.TotalPrice, statusColor(b.Status).Sprint(b.Status.DisplayName()))
		}
		return nil
	},
}

func statusColor(s booking.Status) *color.Color {
	switch s {
	case booking.StatusConfirmed:
		return color.New(color.FgGreen)
	case booking.StatusPending:
		return color.New(color.FgYellow)
	case booking.StatusCancelled:
		return color.New(color.FgRed)
	}
	return color.New(color.Reset)
}
