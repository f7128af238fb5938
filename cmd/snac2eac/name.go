package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snac2eac/internal/eac"
	"snac2eac/internal/naming"
)

var asFilename bool

// nameCmd prints the display name of an EAC-CPF document
var nameCmd = &cobra.Command{
	Use:   "name FILE",
	Short: "Print the display name of an EAC-CPF document",
	Long: `Print the first <part> of an EAC-CPF document, or the output
file name derived from it.

Examples:
  snac2eac name eacsForAspace/HuntJohn1740-1824.xml
  snac2eac name --filename record.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runName,
}

func init() {
	nameCmd.Flags().BoolVar(&asFilename, "filename", false, "print the derived output file name")
}

func runName(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	doc, err := eac.ReadDocument(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	name, err := eac.ExtractName(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if asFilename {
		name = naming.FileName(name)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), name)

	return err
}
