// cmd/client/cmd/extras/list.go
package extras

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hostelmate/internal/domain/extras"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Каталог услуг",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println("=== Платные услуги ===")

		price := color.New(color.FgGreen)
		for _, c := range extras.Categories() {
			fmt.Println()
			color.New(color.Bold).Printf("%s\n", c.Name)
			for _, e := range c.Items {
				fmt.Printf("  %d. %s - %s\n", e.ID, e.Name, e.Description)
				price.Printf("     %d ₽\n", e.Price)
			}
		}

		fmt.Println()
		fmt.Println("Заказать: hostelmate extras order <id> [<id> ...]")
		return nil
	},
}
