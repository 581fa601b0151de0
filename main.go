package main

import (
	"fmt"
	"os"

	"payplan/bnpl-csv/cmd/extract"
	"payplan/bnpl-csv/cmd/ics"
	"payplan/bnpl-csv/cmd/importcsv"
	"payplan/bnpl-csv/cmd/risks"
	"payplan/bnpl-csv/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(risks.Cmd)
	root.Cmd.AddCommand(ics.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
