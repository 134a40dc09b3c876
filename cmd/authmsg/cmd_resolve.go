package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"authmsg/internal/application"
	"authmsg/internal/infrastructure/i18n"
)

var resolveLang string

var resolveCmd = &cobra.Command{
	Use:   "resolve [message...]",
	Short: "Localize one backend message",
	Long: `Resolves a raw backend message against the built-in rules and prints
the localized string. Unrecognized messages are printed unchanged.`,
	Example: `  authmsg resolve --lang fr "Too many login attempts."`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveLang, "lang", "l", "en", "Target locale")
}

func runResolve(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := application.NewLocalizeService(nil, i18n.NewTranslator("en", logger), nil, nil, logger)

	out := svc.Localize(cmd.Context(), resolveLang, strings.Join(args, " "))
	fmt.Fprintln(cmd.OutOrStdout(), out.Message)
	return nil
}
