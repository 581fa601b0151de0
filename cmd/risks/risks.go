// Package risks implements the risk report command.
package risks

import (
	"fmt"

	"github.com/spf13/cobra"

	"payplan/bnpl-csv/cmd/root"
	"payplan/bnpl-csv/internal/common"
	"payplan/bnpl-csv/internal/risk"
)

// Cmd represents the risks command.
var Cmd = &cobra.Command{
	Use:   "risks",
	Short: "Report scheduling risks over an items CSV file",
	Long: `Risks reads an items CSV file and reports date collisions (two or more
payments due the same day) and autopay charges landing on weekends.`,
	Run: risksFunc,
}

func risksFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	items, err := common.ReadItemsFile(root.SharedFlags.Input, root.Logger())
	if err != nil {
		root.Log.Fatalf("Error reading items CSV: %v", err)
	}

	detector := risk.NewDetector(root.Logger())
	detected := detector.Detect(items, root.Timezone())
	if len(detected) == 0 {
		root.Log.Info("No scheduling risks detected")
		return
	}
	for _, r := range detected {
		fmt.Printf("risk [%s/%s]: %s (items: %v)\n", r.Type, r.Severity, r.Message, r.AffectedItems)
	}
}
