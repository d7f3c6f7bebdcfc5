// cmd/client/cmd/request/list.go
package request

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
	"hostelmate/internal/domain/request"
)

var listAll bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Мои запросы",
	Long:  `Активные запросы в службу размещения. С флагом --all показываются и закрытые.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		var requests []request.Request
		if listAll {
			requests = app.Requests().All()
		} else {
			requests = app.Requests().Active()
		}

		if len(requests) == 0 {
			fmt.Println("Запросов нет.")
			return nil
		}

		fmt.Println("=== Мои запросы ===")
		fmt.Println()
		for _, r := range requests {
			fmt.Printf("[%s] %s\n", r.Category.DisplayName(), r.Description)
			fmt.Printf("    %s • %s\n",
				r.Created.Format("02.01.2006 15:04"),
				requestStatusColor(r.Status).Sprint(r.Status.DisplayName()))
		}
		return nil
	},
}

func requestStatusColor(s request.Status) *color.Color {
	switch s {
	case request.StatusNew:
		return color.New(color.FgCyan)
	case request.StatusInProgress:
		return color.New(color.FgYellow)
	case request.StatusResolved:
		return color.New(color.FgGreen)
	case request.StatusCancelled:
		return color.New(color.FgRed)
	}
	return color.New(color.Reset)
}

func init() {
	ListCmd.Flags().BoolVarP(&listAll, "all", "a", false, "показать и закрытые запросы")
}
