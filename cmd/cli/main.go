package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/apbooks/glcore/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glcore-cli",
		Short: "GL core CLI tool",
		Long:  `A command line interface for the general ledger computation service.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Reconciliation commands
	reconcileCmd := &cobra.Command{
		Use:   "reconcile [bank-id]",
		Short: "Compute a bank's reconciliation report",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			reconcileBank(args[0])
		},
	}
	rootCmd.AddCommand(reconcileCmd)

	// Report commands
	var from, to string

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Report operations",
	}

	sourceCodesCmd := &cobra.Command{
		Use:   "source-codes",
		Short: "Build the per-source-code report for a date range",
		Run: func(cmd *cobra.Command, args []string) {
			sourceCodeReport(from, to)
		},
	}
	sourceCodesCmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	sourceCodesCmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD)")
	sourceCodesCmd.MarkFlagRequired("from")
	sourceCodesCmd.MarkFlagRequired("to")

	reportCmd.AddCommand(sourceCodesCmd)
	rootCmd.AddCommand(reportCmd)

	// Migration commands
	var databaseURL, migrationsPath string

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}
	migrateCmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL URL")
	migrateCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations", "Migrations directory")

	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Run: func(cmd *cobra.Command, args []string) {
			if err := postgres.RunMigrations(databaseURL, migrationsPath); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}

	migrateDownCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		Run: func(cmd *cobra.Command, args []string) {
			if err := postgres.RunMigrationsDown(databaseURL, migrationsPath); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func reconcileBank(bankID string) {
	result := getJSON("/api/v1/banks/" + url.PathEscape(bankID) + "/reconciliation")

	fmt.Printf("GL balance:               %v\n", result["gl_balance"])
	fmt.Printf("Total outstanding items:  %v\n", result["total_outstanding_items"])
	fmt.Printf("Computed statement balance: %v\n", result["computed_bank_statement_balance"])

	groups, _ := result["groups"].([]any)
	for _, g := range groups {
		group, ok := g.(map[string]any)
		if !ok {
			continue
		}
		fmt.Printf("  type %v: sum %v\n", group["type"], group["sum_amount"])
	}
}

func sourceCodeReport(from, to string) {
	query := url.Values{"from": {from}, "to": {to}}
	result := getJSON("/api/v1/reports/source-codes?" + query.Encode())

	rows, _ := result["rows"].([]any)
	for _, r := range rows {
		row, ok := r.(map[string]any)
		if !ok {
			continue
		}

		code, _ := row["source_code"].(string)
		if code == "" {
			code = "(none)"
		}

		sub, _ := row["subtotal"].(map[string]any)
		fmt.Printf("%-12s debit %v  credit %v  (%v postings)\n",
			code, sub["debit_total"], sub["credit_total"], sub["count"])
	}

	total, _ := result["total"].(map[string]any)
	fmt.Printf("%-12s debit %v  credit %v  (%v postings)\n",
		"TOTAL", total["debit_total"], total["credit_total"], total["count"])
}

func getJSON(path string) map[string]any {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	return result
}
