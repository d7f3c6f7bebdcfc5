package room

import (
	"github.com/spf13/cobra"
)

// RoomsCmd - родительская команда для просмотра справочника номеров
var RoomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Доступные номера",
	Long:  `Просмотр справочника номеров: список и подробности по номеру.`,
}
