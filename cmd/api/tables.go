package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gestorpro/internal/adapter/persistence/repository"
	"gestorpro/internal/infrastructure/database"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "DynamoDB table management",
}

var tablesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the DynamoDB tables that do not exist yet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		if cfg.Store.Driver != "dynamodb" {
			return errors.New("tables create needs store.driver=dynamodb")
		}

		ddb, err := database.ConnectDynamoDB(cmd.Context(), cfg.AWS, cfg.DynamoDB)
		if err != nil {
			return err
		}
		created, err := repository.CreateTables(cmd.Context(), ddb, repository.TableNames{
			Records:       cfg.DynamoDB.RecordsTable,
			Organizations: cfg.DynamoDB.OrganizationsTable,
			Users:         cfg.DynamoDB.UsersTable,
			Identities:    cfg.DynamoDB.IdentitiesTable,
		})
		if err != nil {
			return err
		}
		logger.Info("tables ready", zap.Strings("created", created))
		fmt.Fprintf(cmd.OutOrStdout(), "created %d table(s)\n", len(created))
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesCreateCmd)
}
