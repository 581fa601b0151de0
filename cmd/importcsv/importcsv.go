// Package importcsv implements the CSV import command.
package importcsv

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"payplan/bnpl-csv/cmd/root"
	"payplan/bnpl-csv/internal/common"
	"payplan/bnpl-csv/internal/risk"
)

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import and validate an items CSV file",
	Long: `Import reads an items CSV file in the external row format, validates
every row (malformed values and impossible calendar dates are skipped with
a warning), and writes the normalized rows back out.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	items, err := common.ReadItemsFile(root.SharedFlags.Input, root.Logger())
	if err != nil {
		root.Log.Fatalf("Error reading items CSV: %v", err)
	}
	root.Log.Infof("Imported %d items", len(items))

	if root.SharedFlags.Output != "" {
		if err := common.WriteItemsFile(items, root.SharedFlags.Output, root.Logger()); err != nil {
			root.Log.Fatalf("Error writing output CSV: %v", err)
		}
	} else {
		if err := common.WriteItems(items, os.Stdout); err != nil {
			root.Log.Fatalf("Error writing CSV to stdout: %v", err)
		}
	}

	if root.SharedFlags.Risks {
		detector := risk.NewDetector(root.Logger())
		for _, r := range detector.Detect(items, root.Timezone()) {
			fmt.Printf("risk [%s/%s]: %s (items: %v)\n", r.Type, r.Severity, r.Message, r.AffectedItems)
		}
	}
}
