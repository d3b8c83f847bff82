package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	txnID   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bytegate-cli",
		Short: "Bytegate CLI tool",
		Long:  `A command line interface for the Bytegate core-banking API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Bytegate API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 60*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&txnID, "txn", "", "Transaction id (generated when empty)")

	rootCmd.AddCommand(
		depositCmd(),
		withdrawCmd(),
		balanceCmd(),
		transferCmd(),
		loanCmd(),
		payCmd(),
		reverseCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func depositCmd() *cobra.Command {
	var account string
	var cash, check, total float64

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit cash and/or checks into an account",
		Run: func(cmd *cobra.Command, args []string) {
			callAPI("deposito-cta", map[string]any{
				"numCuenta":     account,
				"montoEfectivo": cash,
				"montoCheque":   check,
				"montoTotal":    total,
			})
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number")
	cmd.Flags().Float64Var(&cash, "cash", 0, "Cash amount")
	cmd.Flags().Float64Var(&check, "check", 0, "Check amount")
	cmd.Flags().Float64Var(&total, "total", 0, "Total amount")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("total")

	return cmd
}

func withdrawCmd() *cobra.Command {
	var account string
	var amount float64

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw cash from an account",
		Run: func(cmd *cobra.Command, args []string) {
			callAPI("retiro-cta", map[string]any{
				"numCuenta":   account,
				"montoRetiro": amount,
			})
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Withdrawal amount")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func balanceCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the balance breakdown of an account",
		Run: func(cmd *cobra.Command, args []string) {
			callAPI("consulta-cta", map[string]any{"numCuenta": account})
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number")
	cmd.MarkFlagRequired("account")

	return cmd
}

func transferCmd() *cobra.Command {
	var source, destination string
	var amount float64

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer between two accounts",
		Run: func(cmd *cobra.Command, args []string) {
			callAPI("transfer-cta", map[string]any{
				"numCuentaOrigen":    source,
				"numCuentaDestino":   destination,
				"montoTransferencia": amount,
			})
		},
	}

	cmd.Flags().StringVar(&source, "from", "", "Source account number")
	cmd.Flags().StringVar(&destination, "to", "", "Destination account number")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Transfer amount")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func loanCmd() *cobra.Command {
	var loan string

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Show the outstanding balances of a loan",
		Run: func(cmd *cobra.Command, args []string) {
			callAPI("consulta-prestamo", map[string]any{"numPrestamo": loan})
		},
	}

	cmd.Flags().StringVar(&loan, "loan", "", "Loan number")
	cmd.MarkFlagRequired("loan")

	return cmd
}

func payCmd() *cobra.Command {
	var loan, account string
	var debit, cash, check, total float64

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay a loan from an account debit, cash and/or checks",
		Run: func(cmd *cobra.Command, args []string) {
			callAPI("pago-prestamo", map[string]any{
				"numPrestamo":   loan,
				"numCuenta":     account,
				"montoDebito":   debit,
				"montoEfectivo": cash,
				"montoCheque":   check,
				"montoTotal":    total,
			})
		},
	}

	cmd.Flags().StringVar(&loan, "loan", "", "Loan number")
	cmd.Flags().StringVar(&account, "account", "", "Debit account number")
	cmd.Flags().Float64Var(&debit, "debit", 0, "Amount debited from the account")
	cmd.Flags().Float64Var(&cash, "cash", 0, "Cash amount")
	cmd.Flags().Float64Var(&check, "check", 0, "Check amount")
	cmd.Flags().Float64Var(&total, "total", 0, "Total amount")
	cmd.MarkFlagRequired("loan")
	cmd.MarkFlagRequired("total")

	return cmd
}

func reverseCmd() *cobra.Command {
	var loan, authorization, reason string

	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "Reverse a previously applied loan payment",
		Run: func(cmd *cobra.Command, args []string) {
			callAPI("reversa-pago-prestamo", map[string]any{
				"numPrestamo":          loan,
				"autorizacionOriginal": authorization,
				"motivo":               reason,
			})
		},
	}

	cmd.Flags().StringVar(&loan, "loan", "", "Loan number")
	cmd.Flags().StringVar(&authorization, "auth", "", "Authorization code of the original payment")
	cmd.Flags().StringVar(&reason, "reason", "", "Reversal reason")
	cmd.MarkFlagRequired("loan")
	cmd.MarkFlagRequired("auth")

	return cmd
}

func transactionID() string {
	if txnID != "" {
		return txnID
	}
	return "CLI-" + ulid.Make().String()
}

func callAPI(operation string, body map[string]any) {
	body["idTransaccion"] = transactionID()

	payload, err := json.Marshal(body)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/byte/"+operation, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if json.Indent(&pretty, raw, "", "  ") == nil {
		raw = pretty.Bytes()
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Operation FAILED (Status: %d)\n%s\n", resp.StatusCode, string(raw))
		os.Exit(1)
	}

	fmt.Println(string(raw))
}
