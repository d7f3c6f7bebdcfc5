package extras

import (
	"github.com/spf13/cobra"
)

// ExtrasCmd - родительская команда для платных услуг.
var ExtrasCmd = &cobra.Command{
	Use:   "extras",
	Short: "Платные услуги",
	Long:  `Каталог платных услуг хостела: питание, прачечная, экскурсии.`,
}
