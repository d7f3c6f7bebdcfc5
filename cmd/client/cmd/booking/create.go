// cmd/client/cmd/booking/create.go
package booking

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
	"hostelmate/internal/domain/booking"
)

var (
	createRoomID   int
	createCheckIn  string
	createCheckOut string
	createName     string
	createEmail    string
	createPhone    string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Забронировать номер",
	Long: `Создание бронирования: номер, даты заезда и выезда, данные гостя.
Даты указываются в формате ГГГГ-ММ-ДД. Стоимость считается по числу ночей.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Бронирование ===")
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)

		if createRoomID == 0 {
			fmt.Print("Номер (id): ")
			if _, err := fmt.Scanln(&createRoomID); err != nil {
				return fmt.Errorf("некорректный идентификатор номера")
			}
		}
		promptIfEmpty(reader, &createCheckIn, "Дата заезда (ГГГГ-ММ-ДД): ")
		promptIfEmpty(reader, &createCheckOut, "Дата выезда (ГГГГ-ММ-ДД): ")
		promptIfEmpty(reader, &createName, "Ваше имя: ")
		promptIfEmpty(reader, &createEmail, "Email: ")
		promptIfEmpty(reader, &createPhone, "Телефон: ")

		b, err := app.Bookings().Create(cmd.Context(), booking.Request{
			RoomID:     createRoomID,
			CheckIn:    createCheckIn,
			CheckOut:   createCheckOut,
			GuestName:  createName,
			GuestEmail: createEmail,
			GuestPhone: createPhone,
		})
		if err != nil {
			return fmt.Errorf("ошибка бронирования: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Бронирование подтверждено! %s, %s - %s\n", b.RoomTitle, b.CheckIn, b.CheckOut)
		color.New(color.FgGreen, color.Bold).Printf("Итого: %d ₽\n", b.TotalPrice)
		fmt.Printf("Номер брони: %s\n", b.ID)

		return nil
	},
}

func promptIfEmpty(reader *bufio.Reader, dst *string, label string) {
	if *dst != "" {
		return
	}
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	*dst = strings.TrimSpace(line)
}

func init() {
	CreateCmd.Flags().IntVarP(&createRoomID, "room-id", "r", 0, "идентификатор номера")
	CreateCmd.Flags().StringVar(&createCheckIn, "check-in", "", "дата заезда (ГГГГ-ММ-ДД)")
	CreateCmd.Flags().StringVar(&createCheckOut, "check-out", "", "дата выезда (ГГГГ-ММ-ДД)")
	CreateCmd.Flags().StringVarP(&createName, "name", "n", "", "имя гостя")
	CreateCmd.Flags().StringVarP(&createEmail, "email", "e", "", "email гостя")
	CreateCmd.Flags().StringVarP(&createPhone, "phone", "p", "", "телефон гостя")
}
