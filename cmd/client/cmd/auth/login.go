// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hostelmate/cmd/client/cmd/types"
	"hostelmate/internal/app/client"
)

var loginEmail string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в приложение",
	Long: `Локальный вход по email и паролю. Сервера авторизации нет:
учетная запись создается на устройстве, пароль нигде не сохраняется.

Для входа как администратор используйте настроенную админскую пару
(по умолчанию admin@hostel.com / admin123).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Вход ===")
		fmt.Println()

		// Запрашиваем email
		email := loginEmail
		if email == "" {
			fmt.Print("Email: ")
			_, _ = fmt.Scanln(&email)
		}

		// Запрашиваем пароль
		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		u, err := app.Users().Login(cmd.Context(), email, string(password))
		if err != nil {
			return fmt.Errorf("ошибка входа: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Добро пожаловать, %s!\n", u.Name)
		if u.IsAdmin {
			fmt.Println("Вы вошли как администратор. Панель управления: hostelmate admin")
		}

		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "email пользователя")
}
