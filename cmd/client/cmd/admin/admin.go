// cmd/client/cmd/admin/admin.go
package admin

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
	domain "hostelmate/internal/domain/admin"
)

// AdminCmd показывает панель управления. Доступна только администратору.
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Панель управления",
	Long:  `Сводка для администратора: показатели, заезды и выезды на сегодня.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		u := app.Display().GetUser(cmd.Context())
		if u == nil || !u.IsAdmin {
			return fmt.Errorf("доступ только для администратора")
		}

		d, err := app.Admin().Build(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка построения сводки: %w", err)
		}

		bold := color.New(color.Bold)
		green := color.New(color.FgGreen)

		fmt.Println("=== Панель управления ===")
		fmt.Println()
		bold.Println("Показатели")
		fmt.Printf("  Заполняемость: %d%%\n", d.Occupancy)
		green.Printf("  Доход за сегодня: %d ₽\n", d.TodayRevenue)
		fmt.Printf("  Рейтинг: %.1f\n", d.Rating)
		fmt.Printf("  Активных запросов: %d\n", d.ActiveRequests)
		fmt.Println()
		bold.Println("Бронирования")
		fmt.Printf("  Всего: %d\n", d.BookingsTotal)
		green.Printf("  Выручка: %d ₽\n", d.BookingsRevenue)

		fmt.Println()
		bold.Println("Заезды сегодня")
		printMovements(d.Arrivals)
		fmt.Println()
		bold.Println("Выезды сегодня")
		printMovements(d.Departures)
		return nil
	},
}

func printMovements(ms []domain.Movement) {
	if len(ms) == 0 {
		fmt.Println("  нет")
		return
	}
	for _, m := range ms {
		fmt.Printf("  %s - %s\n", m.GuestName, m.RoomTitle)
	}
}
