package main

import (
	"fmt"
	"os"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Inspect invoices",
	Long: `Inspect invoices.

Invoices are addressed by ID or by number with the number- prefix.

Examples:
  recurlyctl invoices list --state past_due
  recurlyctl invoices get number-1001
  recurlyctl invoices pdf number-1001 -f invoice-1001.pdf`,
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE:  runInvoicesList,
}

var invoicesGetCmd = &cobra.Command{
	Use:   "get <invoice-id>",
	Short: "Get invoice details",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoicesGet,
}

var invoicesPDFCmd = &cobra.Command{
	Use:   "pdf <invoice-id>",
	Short: "Download an invoice as PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoicesPDF,
}

var (
	invoicesList    listFlags
	invoicesState   string
	invoicesType    string
	invoicesAccount string
	invoicesFile    string
)

func init() {
	rootCmd.AddCommand(invoicesCmd)

	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesCmd.AddCommand(invoicesGetCmd)
	invoicesCmd.AddCommand(invoicesPDFCmd)

	invoicesList.register(invoicesListCmd)
	invoicesListCmd.Flags().StringVar(&invoicesState, "state", "", "pending, past_due, paid or failed")
	invoicesListCmd.Flags().StringVar(&invoicesType, "type", "", "charge, credit, legacy or non-legacy")
	invoicesListCmd.Flags().StringVar(&invoicesAccount, "account", "", "only this account's invoices")
	invoicesPDFCmd.Flags().StringVarP(&invoicesFile, "file", "f", "", "output file (default <invoice-id>.pdf)")
}

func runInvoicesList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	params := &recurly.InvoiceListParams{ListParams: invoicesList.params(), State: invoicesState, Type: invoicesType}

	var page *recurly.List[recurly.Invoice]
	if invoicesAccount != "" {
		page, err = client.Invoices.ListForAccount(cmd.Context(), invoicesAccount, params, requestOptions()...)
	} else {
		page, err = client.Invoices.List(cmd.Context(), params, requestOptions()...)
	}
	if err != nil {
		return fmt.Errorf("failed to list invoices: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, page)
	}
	if len(page.Data) == 0 {
		fmt.Fprintln(out, "No invoices found.")
		return nil
	}

	w := newTable(out, "NUMBER", "ACCOUNT", "TYPE", "STATE", "TOTAL", "BALANCE")
	for _, inv := range page.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f %s\t%.2f\n",
			inv.Number, accountCode(inv.Account), inv.Type, inv.State, inv.Total, inv.Currency, inv.Balance)
	}
	w.Flush()
	printNext(out, page)
	return nil
}

func runInvoicesGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	inv, err := client.Invoices.Get(cmd.Context(), args[0], requestOptions()...)
	if err != nil {
		if recurly.IsNotFound(err) {
			return fmt.Errorf("invoice not found: %s", args[0])
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, inv)
	}
	fmt.Fprintf(out, "ID:              %s\n", inv.ID)
	fmt.Fprintf(out, "Number:          %s\n", inv.Number)
	fmt.Fprintf(out, "Account:         %s\n", accountCode(inv.Account))
	fmt.Fprintf(out, "Type:            %s\n", inv.Type)
	fmt.Fprintf(out, "State:           %s\n", inv.State)
	fmt.Fprintf(out, "Total:           %.2f %s\n", inv.Total, inv.Currency)
	fmt.Fprintf(out, "Paid:            %.2f\n", inv.Paid)
	fmt.Fprintf(out, "Balance:         %.2f\n", inv.Balance)
	return nil
}

func runInvoicesPDF(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Invoices.GetPDF(cmd.Context(), args[0], requestOptions()...)
	if err != nil {
		return fmt.Errorf("failed to download invoice: %w", err)
	}

	path := invoicesFile
	if path == "" {
		path = args[0] + ".pdf"
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s (%d bytes)\n", checkMark, path, len(data))
	return nil
}
