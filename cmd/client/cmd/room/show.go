package room

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
)

var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Подробности номера",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("некорректный идентификатор номера: %q", args[0])
		}

		r, err := app.Rooms().Get(id)
		if err != nil {
			return fmt.Errorf("номер %d не найден", id)
		}

		color.New(color.Bold).Printf("%s\n", r.Title)
		fmt.Println(strings.Repeat("-", len([]rune(r.Title))))
		fmt.Printf("Тип: %s\n", r.Type)
		fmt.Printf("Вместимость: до %d чел.\n", r.Capacity)
		color.New(color.FgGreen).Printf("Цена: %d ₽ за ночь\n", r.Price)
		fmt.Println()
		fmt.Println(r.Description)
		fmt.Println()
		fmt.Printf("Удобства: %s\n", strings.Join(r.Amenities, ", "))
		fmt.Println()
		fmt.Printf("Забронировать: hostelmate booking create --room-id %d\n", r.ID)
		return nil
	},
}
