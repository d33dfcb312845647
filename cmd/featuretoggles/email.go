package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/clinia/featuretoggles/decisionx"
	"github.com/clinia/featuretoggles/examples/invoice"
)

type emailOutput struct {
	Strategy string   `json:"strategy"`
	Content  []string `json:"content"`
}

func newEmailCmd() *cobra.Command {
	var invoiceID string
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Generate an invoice email with every decision-injection strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, l, err := loadRouter(cmd)
			if err != nil {
				return err
			}

			decisions := decisionx.NewFeatureDecisions(r)
			factory := invoice.NewFeatureAwareFactory(decisions, l)
			emailers := []struct {
				name    string
				emailer invoice.InvoiceEmailer
			}{
				{"layer-of-indirection", invoice.NewIndirectEmailer(decisions)},
				{"inversion-of-decision", factory.CreateConfiguredEmailer(cmd.Context())},
				{"avoiding-conditionals", factory.CreateEmailer(cmd.Context())},
			}

			out := make([]emailOutput, 0, len(emailers))
			for _, e := range emailers {
				email := e.emailer.GenerateInvoiceEmail(invoice.Invoice{ID: invoiceID})
				out = append(out, emailOutput{
					Strategy: e.name,
					Content: lo.Map(email.Kinds(), func(k invoice.ContentKind, _ int) string {
						return string(k)
					}),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return errors.WithStack(enc.Encode(out))
		},
	}
	cmd.Flags().StringVar(&invoiceID, "invoice", "INV-0001", "Invoice identifier")
	return cmd
}
