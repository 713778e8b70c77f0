package main

import (
	"github.com/spf13/cobra"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Payment reminder tasks",
}

var remindersRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Send today's payment reminders once and exit",
	Long: `Send today's payment reminders once and exit.

With Redis configured, reminders already sent today are skipped, so the
command is safe to rerun after a partial failure.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()
		return a.runReminders(cmd.Context())
	},
}

func init() {
	remindersCmd.AddCommand(remindersRunCmd)
}
