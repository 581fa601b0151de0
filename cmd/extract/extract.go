// Package extract implements the email extraction command.
package extract

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"payplan/bnpl-csv/cmd/root"
	"payplan/bnpl-csv/internal/common"
	"payplan/bnpl-csv/internal/emailparser"
	"payplan/bnpl-csv/internal/risk"
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract payment items from pasted reminder emails",
	Long: `Extract reads a text file of pasted BNPL reminder emails (separated by
"---" lines or repeated From:/Subject: headers), extracts one installment
record per email with a confidence score, deduplicates them and writes the
result as CSV.`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	timezone := root.Timezone()
	parser := emailparser.New(root.Registry(), root.Logger())
	result, err := parser.Parse(string(data), timezone)
	if err != nil {
		root.Log.Fatalf("Extraction failed: %v", err)
	}

	root.Log.Infof("Extracted %d items (%d duplicates removed, %d issues)",
		len(result.Items), result.DuplicatesRemoved, len(result.Issues))

	for _, issue := range result.Issues {
		fmt.Printf("issue: %s", issue.Reason)
		if len(issue.FieldHints) > 0 {
			fmt.Printf(" (missing: %v)", issue.FieldHints)
		}
		fmt.Printf("\n  %s\n", issue.Snippet)
	}

	if root.SharedFlags.Output != "" {
		if err := common.WriteItemsFile(result.Items, root.SharedFlags.Output, root.Logger()); err != nil {
			root.Log.Fatalf("Error writing output CSV: %v", err)
		}
	} else {
		if err := common.WriteItems(result.Items, os.Stdout); err != nil {
			root.Log.Fatalf("Error writing CSV to stdout: %v", err)
		}
	}

	if root.SharedFlags.Risks {
		detector := risk.NewDetector(root.Logger())
		for _, r := range detector.Detect(result.Items, timezone) {
			fmt.Printf("risk [%s/%s]: %s (items: %v)\n", r.Type, r.Severity, r.Message, r.AffectedItems)
		}
	}
}
