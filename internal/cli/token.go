package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/genesehub/internal/auth"
)

func newTokenCommand() *cobra.Command {
	var (
		userID string
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Выпустить токен сессии для профиля",
		Long: `Выпускает подписанный токен для AUTH_MODE=token. Токен передаётся в cookie "session"
или в заголовке Authorization: Bearer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("не задан --user")
			}
			if secret == "" {
				secret = os.Getenv("SESSION_SECRET")
			}
			if secret == "" {
				return errors.New("не задан SESSION_SECRET (или --secret)")
			}

			token, exp, err := auth.NewTokenManager(secret, ttl).Issue(userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", exp.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Идентификатор профиля (subject токена)")
	cmd.Flags().StringVar(&secret, "secret", "", "Секрет подписи (по умолчанию SESSION_SECRET)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Время жизни токена")
	return cmd
}
