// cmd/client/cmd/room/list.go
package room

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
	"hostelmate/internal/domain/room"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список номеров",
	Long:  `Просмотр всех номеров справочника. Выберите подходящий вариант.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		rooms := app.Rooms().List()

		// Выводим результат
		switch listFormat {
		case "json":
			return printRoomsJSON(rooms)
		case "table":
			return printRoomsTable(rooms)
		default:
			return printRoomsSimple(rooms)
		}
	},
}

func printRoomsSimple(rooms []room.Room) error {
	title := color.New(color.Bold)
	price := color.New(color.FgGreen)

	fmt.Println("=== Доступные номера ===")
	fmt.Println()

	for _, r := range rooms {
		title.Printf("%d. %s\n", r.ID, r.Title)
		price.Printf("   %d ₽ за ночь", r.Price)
		fmt.Printf(" • до %d чел. • %s\n", r.Capacity, strings.Join(r.Amenities, ", "))
	}

	fmt.Println()
	fmt.Println("Подробнее: hostelmate rooms show <id>")
	return nil
}

func printRoomsTable(rooms []room.Room) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tТИП\tЦЕНА\tМЕСТ")
	for _, r := range rooms {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", r.ID, r.Title, r.Type, r.Price, r.Capacity)
	}
	return w.Flush()
}

func printRoomsJSON(rooms []room.Room) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rooms)
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "", "формат вывода (table, json)")
}
