package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	ordercheck "github.com/pyhub-apps/ordercheck-golang"
	"github.com/pyhub-apps/ordercheck-golang/pkg/codes"
	"github.com/pyhub-apps/ordercheck-golang/pkg/config"
	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
	"github.com/pyhub-apps/ordercheck-golang/pkg/invoice"
	"github.com/pyhub-apps/ordercheck-golang/pkg/logging"
	"github.com/pyhub-apps/ordercheck-golang/pkg/tabular"
)

func main() {
	app := &cli.App{
		Name:  "ordercheck",
		Usage: "Extract invoice text from PDFs and check invoices against orders",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			logging.Init(c.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			extractCommand(),
			parseCommand(),
			compareCommand(),
			codesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.Log.Fatal(err)
	}
}

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Print the text content of a PDF to stdout",
		ArgsUsage: "<pdf>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("Usage: ordercheck extract <pdf>", 1)
			}
			text, err := ordercheck.ExtractText(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Extract invoice line items from a PDF into the invoice CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pdf",
				Usage:    "path to the invoice PDF",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Usage:    "path for the generated invoice CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "translations",
				Usage: "item name translations CSV (default: translations.csv next to the PDF)",
			},
		},
		Action: func(c *cli.Context) error {
			pdfPath := c.String("pdf")
			translationsPath := c.String("translations")
			if translationsPath == "" {
				translationsPath = filepath.Join(filepath.Dir(pdfPath), invoice.DefaultTranslationsFile)
			}
			// A missing translations file is not an error, the names
			// just stay untranslated.
			translations, err := invoice.LoadTranslations(translationsPath)
			if err != nil {
				return err
			}

			records, err := ordercheck.ParseInvoicePDF(pdfPath, translations)
			if err != nil {
				return err
			}
			logging.Log.Infof("Parsed %d invoice rows from %s", len(records), pdfPath)
			return invoice.WriteFile(c.String("output"), records)
		},
	}
}

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "Compare an order file against an invoice CSV and write a styled report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "order",
				Usage:    "path to the order file (CSV or XLSX)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "invoice",
				Usage:    "path to the generated invoice CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Usage:    "path for the report workbook",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "comparison profile (YAML)",
			},
			&cli.StringFlag{
				Name:  "tolerance",
				Usage: "numeric tolerance overriding the profile",
			},
		},
		Action: func(c *cli.Context) error {
			opts, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			if raw := c.String("tolerance"); raw != "" {
				tolerance, err := config.ParseTolerance(raw)
				if err != nil {
					return err
				}
				opts.Tolerance = tolerance
			}

			result, err := ordercheck.CompareFiles(
				c.String("order"), c.String("invoice"), c.String("output"), opts)
			if err != nil {
				return err
			}
			logging.Log.Infof("Report written to %s: %d matched, %d mismatched, %d missing in invoice, %d missing in order",
				c.String("output"), result.Matched, result.Mismatched,
				result.MissingInvoice, result.MissingOrder)
			return nil
		},
	}
}

func codesCommand() *cli.Command {
	return &cli.Command{
		Name:  "codes",
		Usage: "Extract the order key column and its trimmed form into a workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "order",
				Usage:    "path to the order file (CSV or XLSX)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "path for the workbook",
				Value: "alkatr_szam_bal.xlsx",
			},
		},
		Action: func(c *cli.Context) error {
			orderRows, err := tabular.ReadRows(c.String("order"))
			if err != nil {
				return err
			}

			defaults := ordercheck.DefaultOptions()
			rows := codes.Rows(orderRows, defaults.KeyOrderColumn, defaults.TrimUnderscoreAfter)
			if len(rows) == 0 {
				return errs.Schema("extract codes", c.String("order"), errors.New("no order rows found"))
			}
			return codes.WriteFile(c.String("output"), rows)
		},
	}
}
