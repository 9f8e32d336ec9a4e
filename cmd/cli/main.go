package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/anikdas/ledgerbook/internal/adapter/http/dto"
	"github.com/anikdas/ledgerbook/internal/adapter/repository/memory"
	"github.com/anikdas/ledgerbook/internal/domain"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerbook-cli",
		Short: "LedgerBook CLI tool",
		Long:  `A command line interface for interacting with the LedgerBook API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LedgerBook API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	txCmd.AddCommand(txAddCmd(), txListCmd(), txResetCmd())

	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}
	ledgerCmd.AddCommand(ledgerListCmd(), ledgerShowCmd())

	rootCmd.AddCommand(txCmd, ledgerCmd, topsheetCmd(), deriveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func txAddCmd() *cobra.Command {
	var req dto.RecordTransactionRequest
	var debit, credit string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a single transaction",
		Run: func(cmd *cobra.Command, args []string) {
			var err error
			if req.Debit, err = decimal.NewFromString(debit); err != nil {
				fatalf("Invalid debit amount: %v\n", err)
			}
			if req.Credit, err = decimal.NewFromString(credit); err != nil {
				fatalf("Invalid credit amount: %v\n", err)
			}

			var resp dto.TransactionResponse
			doJSON(http.MethodPost, "/api/v1/transactions", req, &resp)
			printJSON(resp)
		},
	}

	cmd.Flags().StringVar(&req.Date, "date", "", "Transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Particulars, "particulars", "", "Transaction description")
	cmd.Flags().StringVar(&debit, "debit", "0", "Debit amount")
	cmd.Flags().StringVar(&credit, "credit", "0", "Credit amount")
	cmd.Flags().StringVar(&req.Party, "party", "", "Party name")
	cmd.Flags().StringVar(&req.AccountType, "type", "", "Account type (Asset, Liability, Income, Expense, Equity)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("party")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func txListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/transactions"
			if limit > 0 {
				path += fmt.Sprintf("?limit=%d", limit)
			}

			var resp dto.ListTransactionsResponse
			doJSON(http.MethodGet, path, nil, &resp)

			fmt.Printf("%-12s %-30s %12s %12s %-20s %s\n",
				"DATE", "PARTICULARS", "DEBIT", "CREDIT", "PARTY", "TYPE")
			for _, tx := range resp.Transactions {
				fmt.Printf("%-12s %-30s %12s %12s %-20s %s\n",
					tx.Date, truncate(tx.Particulars, 30),
					tx.Debit.StringFixed(2), tx.Credit.StringFixed(2),
					truncate(tx.Party, 20), tx.AccountType)
			}
			fmt.Printf("Total: %d\n", resp.Total)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of transactions to list")

	return cmd
}

func txResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all recorded transactions",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodDelete, "/api/v1/transactions", nil, nil)
			fmt.Println("All transactions deleted")
		},
	}
}

func ledgerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Derive and list all party ledgers",
		Run: func(cmd *cobra.Command, args []string) {
			var resp dto.ListLedgersResponse
			doJSON(http.MethodGet, "/api/v1/ledgers", nil, &resp)

			for _, l := range resp.Ledgers {
				fmt.Printf("%s (%s): closing %s %s\n",
					l.AccountName, l.AccountType,
					l.ClosingBalance.StringFixed(2), l.ClosingBalanceType)
			}
			fmt.Printf("Total: %d\n", resp.Total)
		},
	}
}

func ledgerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <party>",
		Short: "Show one party's ledger",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var resp dto.AccountLedgerResponse
			doJSON(http.MethodGet, "/api/v1/ledgers/"+url.PathEscape(args[0]), nil, &resp)
			printLedger(&resp)
		},
	}
}

func topsheetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topsheet",
		Short: "Show the trial-balance top sheet",
		Run: func(cmd *cobra.Command, args []string) {
			var resp dto.TopSheetResponse
			doJSON(http.MethodGet, "/api/v1/topsheet", nil, &resp)
			printTopSheet(&resp)
		},
	}
}

func deriveCmd() *cobra.Command {
	var file string
	var showTopSheet bool

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive ledgers offline from a JSON transaction file",
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(file)
			if err != nil {
				fatalf("Failed to read %s: %v\n", file, err)
			}

			var rows []dto.RecordTransactionRequest
			if err := json.Unmarshal(data, &rows); err != nil {
				fatalf("Failed to parse %s: %v\n", file, err)
			}

			ctx := cmd.Context()
			store := memory.NewTransactionStore()
			for _, row := range rows {
				tx := domain.Transaction{
					Date:        row.Date,
					Particulars: row.Particulars,
					Debit:       row.Debit,
					Credit:      row.Credit,
					Party:       row.Party,
					AccountType: domain.AccountType(row.AccountType),
				}
				if err := store.Append(ctx, &tx); err != nil {
					fatalf("Failed to load transactions: %v\n", err)
				}
			}

			txs, err := store.List(ctx)
			if err != nil {
				fatalf("Failed to load transactions: %v\n", err)
			}

			ledgers, err := domain.DeriveLedgers(txs)
			if err != nil {
				fatalf("Derivation failed: %v\n", err)
			}

			if showTopSheet {
				printTopSheet(dto.TopSheetFromDomain(domain.BuildTopSheet(ledgers)))
				return
			}
			for _, l := range ledgers {
				printLedger(dto.LedgerFromDomain(l))
				fmt.Println()
			}
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON array of transactions")
	cmd.Flags().BoolVar(&showTopSheet, "topsheet", false, "Print the top sheet instead of full ledgers")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func printLedger(l *dto.AccountLedgerResponse) {
	fmt.Printf("Ledger: %s (%s)\n", l.AccountName, l.AccountType)
	fmt.Printf("%-12s %-30s %12s %12s %12s %s\n",
		"DATE", "PARTICULARS", "DEBIT", "CREDIT", "BALANCE", "SIDE")
	for _, e := range l.Entries {
		fmt.Printf("%-12s %-30s %12s %12s %12s %s\n",
			e.Date, truncate(e.Particulars, 30),
			e.Debit.StringFixed(2), e.Credit.StringFixed(2),
			e.Balance.StringFixed(2), e.BalanceType)
	}
	fmt.Printf("Closing balance: %s %s (debits %s, credits %s)\n",
		l.ClosingBalance.StringFixed(2), l.ClosingBalanceType,
		l.TotalDebit.StringFixed(2), l.TotalCredit.StringFixed(2))
}

func printTopSheet(s *dto.TopSheetResponse) {
	fmt.Printf("%-20s %-10s %15s %s\n", "ACCOUNT", "TYPE", "CLOSING", "SIDE")
	for _, r := range s.Rows {
		fmt.Printf("%-20s %-10s %15s %s\n",
			truncate(r.AccountName, 20), r.AccountType,
			r.ClosingBalance.StringFixed(2), r.ClosingBalanceType)
	}
	fmt.Printf("Totals: debit %s, credit %s\n",
		s.TotalDebit.StringFixed(2), s.TotalCredit.StringFixed(2))
}

func doJSON(method, path string, body, out any) {
	client := &http.Client{Timeout: timeout}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			fatalf("Failed to encode request: %v\n", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fatalf("Failed to build request: %v\n", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fatalf("Error making request: %v\n", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fatalf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			fatalf("Failed to parse response: %v\n", err)
		}
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("Failed to encode output: %v\n", err)
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func fatalf(format string, args ...any) {
	fmt.Printf(format, args...)
	os.Exit(1)
}
