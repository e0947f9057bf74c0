package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/ignatzorin/genesehub/internal/db"
	"github.com/ignatzorin/genesehub/internal/logger"
)

// opener открывает соединение с базой по DSN.
type opener func(ctx context.Context, dsn string) (*sqlx.DB, error)

func defaultOpener(ctx context.Context, dsn string) (*sqlx.DB, error) {
	return db.NewPostgres(ctx, dsn)
}

func newMigrateCommand(open opener) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Применить встроенные миграции схемы портфолио",
		Long: `Создаёт таблицы "Perfis", "Links_Sociais" и "Projetos", если они ещё не созданы.
Уже применённые миграции пропускаются.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = os.Getenv("DATABASE_URL")
			}
			if dsn == "" {
				return errors.New("не задан DATABASE_URL (или --database-url)")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			conn, err := open(ctx, dsn)
			if err != nil {
				return fmt.Errorf("подключение к базе: %w", err)
			}
			defer conn.Close()

			if err := db.RunMigrations(ctx, conn, db.Migrations()); err != nil {
				return err
			}

			logger.Log.Info("migrate: схема актуальна")
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "database-url", "", "DSN базы (по умолчанию DATABASE_URL)")
	return cmd
}
