package booking

import (
	"github.com/spf13/cobra"
)

// BookingCmd - родительская команда для работы с бронированиями
var BookingCmd = &cobra.Command{
	Use:   "booking",
	Short: "Бронирования",
	Long:  `Создание бронирования и просмотр истории бронирований.`,
}
