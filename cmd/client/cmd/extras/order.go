// cmd/client/cmd/extras/order.go
package extras

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hostelmate/internal/domain/extras"
)

var OrderCmd = &cobra.Command{
	Use:   "order <id> [<id> ...]",
	Short: "Заказать услуги",
	Long: `Заказ услуг по идентификаторам из каталога. Заказ имитируется:
оплата не проводится, корзина нигде не сохраняется.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ids := make([]int, 0, len(args))
		for _, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("некорректный идентификатор услуги: %q", arg)
			}
			ids = append(ids, id)
		}

		total, err := extras.CartTotal(ids)
		if err != nil {
			return fmt.Errorf("ошибка заказа: %w", err)
		}

		fmt.Println("=== Заказ ===")
		fmt.Println()
		for _, id := range ids {
			e, _ := extras.Find(id)
			fmt.Printf("  %s - %d ₽\n", e.Name, e.Price)
		}
		fmt.Println()
		color.New(color.FgGreen, color.Bold).Printf("Итого: %d ₽\n", total)
		fmt.Println()
		fmt.Println("✅ Заказ оформлен! Услуги будут добавлены к вашему счету.")
		return nil
	},
}
