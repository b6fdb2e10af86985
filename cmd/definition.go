package cmd

import (
	"os"

	"csv-comparison/feature/definition"

	"github.com/spf13/cobra"
)

var (
	definitionFormat  string
	definitionCatalog bool
)

// definitionCmd is the parent command for definition files.
var definitionCmd = &cobra.Command{
	Use:   "definition",
	Short: "Inspect and convert comparison definitions",
}

// definitionConvertCmd validates a definition file and prints it in another format.
var definitionConvertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Validate a definition and print it as XML, YAML or JSON",
	Long: `Loads a definition (or, with --catalog, a definition catalog), validates it
and writes it to stdout in the requested format.

Examples:
  # Convert a legacy XML definition to YAML
  definition convert definition.xml --format yaml > definition.yaml

  # Validate a catalog
  definition convert catalog.yaml --catalog --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := definition.ParseFormat(definitionFormat)
		if err != nil {
			return err
		}

		if definitionCatalog {
			catalog, err := definition.LoadCatalog(args[0])
			if err != nil {
				return err
			}
			return definition.EncodeCatalog(os.Stdout, format, catalog)
		}

		def, err := definition.Load(args[0])
		if err != nil {
			return err
		}
		return definition.EncodeDefinition(os.Stdout, format, def)
	},
}

func init() {
	definitionConvertCmd.Flags().StringVarP(&definitionFormat, "format", "f", "yaml", "Output format: xml, yaml or json")
	definitionConvertCmd.Flags().BoolVar(&definitionCatalog, "catalog", false, "Treat the file as a catalog of file definitions")
	definitionCmd.AddCommand(definitionConvertCmd)
	RootCmd.AddCommand(definitionCmd)
}
