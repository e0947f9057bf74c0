// Package cli реализует служебную утилиту portfolioctl.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ignatzorin/genesehub/internal/logger"
)

// NewRootCommand собирает корневую команду со всеми подкомандами.
func NewRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Служебные команды сервиса портфолио",
		Long:          "portfolioctl применяет схему базы и выпускает токены сессии для разработки.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env необязателен, как и у сервера.
			_ = godotenv.Load(".env")
			logger.Init(logLevel)
			logger.SetTextFormatter()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Уровень логирования")

	root.AddCommand(newMigrateCommand(defaultOpener))
	root.AddCommand(newTokenCommand())
	return root
}
