package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"formgate/internal/config"
	"formgate/internal/db"
	"formgate/internal/logging"
	"formgate/internal/repository"
	"formgate/internal/server"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger() {
	logConfig := &logging.Config{
		File:       "~/.formgate/cli.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger = logging.GetLogger()
}

// openContacts connects to the database, showing a spinner while the
// connection and auto-migration run
func openContacts() (repository.ContactRepository, func() error, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Connecting to database..."
	s.Start()
	defer s.Stop()

	client, err := db.Initialize()
	if err != nil {
		return nil, nil, err
	}
	return repository.NewContactRepository(client), client.Close, nil
}

var rootCmd = &cobra.Command{
	Use:   "formgate",
	Short: "FormGate - self-hosted contact form backend",
	Long: `FormGate serves an embeddable contact form, validates and stores
submissions, and notifies you by email. The CLI also gives direct
access to stored contacts.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the FormGate API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logger.Error("Error loading config: %v", err)
			os.Exit(1)
		}

		client, err := db.Initialize()
		if err != nil {
			logger.Error("Failed to initialize database: %v", err)
			os.Exit(1)
		}
		defer client.Close()

		srv := server.NewServer(db.NewDatabase(client), cfg)
		if err := srv.Init(); err != nil {
			logger.Error("Failed to initialize server: %v", err)
			os.Exit(1)
		}
		logger.Info("Listening on :%s", cfg.Port)
		if err := srv.Start(); err != nil {
			logger.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent contact submissions",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		contacts, closeFn, err := openContacts()
		if err != nil {
			logger.Error("Failed to connect to database: %v", err)
			os.Exit(1)
		}
		defer closeFn()

		ctx := context.Background()
		rows, err := contacts.List(ctx, offset, limit)
		if err != nil {
			logger.Error("Failed to list contacts: %v", err)
			os.Exit(1)
		}
		total, err := contacts.Count(ctx)
		if err != nil {
			logger.Error("Failed to count contacts: %v", err)
			os.Exit(1)
		}

		fmt.Printf("%-36s  %-20s  %-30s  %s\n", "ID", "NAME", "EMAIL", "RECEIVED")
		for _, row := range rows {
			fmt.Printf("%-36s  %-20.20s  %-30.30s  %s\n",
				row.UUID, row.Name, row.Email, row.CreatedAt.Format(time.RFC3339))
		}
		fmt.Printf("\n%d of %d contacts\n", len(rows), total)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export contact submissions as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")

		contacts, closeFn, err := openContacts()
		if err != nil {
			logger.Error("Failed to connect to database: %v", err)
			os.Exit(1)
		}
		defer closeFn()

		rows, err := contacts.List(context.Background(), 0, limit)
		if err != nil {
			logger.Error("Failed to list contacts: %v", err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			logger.Error("Failed to marshal contacts: %v", err)
			os.Exit(1)
		}

		if output == "" || output == "-" {
			fmt.Println(string(data))
			return
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			logger.Error("Failed to write %s: %v", output, err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d contacts to %s\n", len(rows), output)
	},
}

func init() {
	listCmd.Flags().Int("limit", 50, "Maximum number of contacts to show")
	listCmd.Flags().Int("offset", 0, "Number of contacts to skip")
	exportCmd.Flags().Int("limit", 1000, "Maximum number of contacts to export")
	exportCmd.Flags().StringP("output", "o", "", "File to write to (default stdout)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	initLogger()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
