package request

import (
	"github.com/spf13/cobra"
)

// RequestCmd - родительская команда для гостевых запросов.
var RequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Гостевые запросы",
	Long:  `Запросы в службу размещения: уборка, техподдержка, вопросы, жалобы.`,
}
