// cmd/client/cmd/request/create.go
package request

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
	"hostelmate/internal/domain/request"
)

var (
	createCategory    string
	createDescription string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать запрос",
	Long:  `Новый запрос в службу размещения. Категория и описание обязательны.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Новый запрос ===")
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)

		if createCategory == "" {
			fmt.Println("Категории:")
			for _, c := range request.Categories() {
				fmt.Printf("  %s - %s\n", c, c.DisplayName())
			}
			fmt.Print("Категория: ")
			line, _ := reader.ReadString('\n')
			createCategory = strings.TrimSpace(line)
		}
		if createDescription == "" {
			fmt.Print("Опишите проблему: ")
			line, _ := reader.ReadString('\n')
			createDescription = strings.TrimSpace(line)
		}

		req, err := app.Requests().Create(request.Category(createCategory), createDescription)
		if err != nil {
			return fmt.Errorf("ошибка создания запроса: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Запрос принят! Категория: %s, статус: %s\n",
			req.Category.DisplayName(), req.Status.DisplayName())
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createCategory, "category", "c", "", "категория (cleaning, technical, question, complaint)")
	CreateCmd.Flags().StringVarP(&createDescription, "description", "d", "", "описание запроса")
}
