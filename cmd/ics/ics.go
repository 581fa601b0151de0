// Package ics implements the calendar export command.
package ics

import (
	"os"

	"github.com/spf13/cobra"

	"payplan/bnpl-csv/cmd/root"
	"payplan/bnpl-csv/internal/common"
	"payplan/bnpl-csv/internal/icsexport"
)

// Cmd represents the ics command.
var Cmd = &cobra.Command{
	Use:   "ics",
	Short: "Export an items CSV file as an iCalendar file",
	Long: `Ics reads an items CSV file and writes one all-day calendar event per
installment payment in RFC 5545 format.`,
	Run: icsFunc,
}

func icsFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	items, err := common.ReadItemsFile(root.SharedFlags.Input, root.Logger())
	if err != nil {
		root.Log.Fatalf("Error reading items CSV: %v", err)
	}

	if root.SharedFlags.Output != "" {
		if err := icsexport.WriteFile(items, root.SharedFlags.Output, root.Logger()); err != nil {
			root.Log.Fatalf("Error writing ICS file: %v", err)
		}
	} else {
		if err := icsexport.Write(items, os.Stdout, root.Logger()); err != nil {
			root.Log.Fatalf("Error writing ICS to stdout: %v", err)
		}
	}
}
