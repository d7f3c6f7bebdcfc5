// cmd/client/cmd/checkin/checkin.go
package checkin

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hostelmate/internal/domain/checkin"
)

var (
	document    string
	acceptRules bool
)

// CheckinCmd - электронная регистрация заезда.
var CheckinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Электронная регистрация",
	Long: `Самостоятельная регистрация заезда: номер документа и согласие
с правилами проживания. Регистрация имитируется, документы не проверяются.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println("=== Электронная регистрация ===")
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)

		if document == "" {
			fmt.Print("Номер документа (паспорт): ")
			line, _ := reader.ReadString('\n')
			document = strings.TrimSpace(line)
		}
		if !acceptRules {
			fmt.Print("Принимаете правила проживания? (y/N): ")
			line, _ := reader.ReadString('\n')
			answer := strings.ToLower(strings.TrimSpace(line))
			acceptRules = answer == "y" || answer == "yes"
		}

		msg, err := checkin.Confirm(checkin.Form{
			DocumentNumber: document,
			RulesAccepted:  acceptRules,
		})
		if err != nil {
			return fmt.Errorf("⚠️ Укажите номер документа и примите правила проживания")
		}

		fmt.Println()
		fmt.Printf("✅ %s\n", msg)
		return nil
	},
}

func init() {
	CheckinCmd.Flags().StringVarP(&document, "document", "d", "", "номер документа")
	CheckinCmd.Flags().BoolVar(&acceptRules, "accept-rules", false, "согласие с правилами проживания")
}
