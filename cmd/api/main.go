package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           GestorPro API
// @version         1.0
// @description     Property management back office: records, payments, contracts, reminders and the tenant portal.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gestorpro",
	Short: "GestorPro property management API",
	Long: `gestorpro serves the property management API and runs its maintenance tasks.

Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to the YAML config file (optional)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(tablesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
