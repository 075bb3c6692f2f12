// Command samplegen writes a sample Excel financial statement for manual
// testing of the tax calculator. Not part of the runtime core; the advisory
// tools themselves never write files.
package main

import (
	"fmt"
	"os"

	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/tabular"
)

func main() {
	const filename = "large_company_data.xlsx"

	fmt.Println("Generating sample Excel file for testing...")
	if err := tabular.WriteSampleWorkbook(filename); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not generate file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nSuccessfully generated %q.\n", filename)
	fmt.Println("You can now use this file as input for the tax calculator.")
}
