package cmd

import (
	"encoding/json"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidtogallery/vidtogallery/api"
	"github.com/vidtogallery/vidtogallery/history"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("qualities", "q", false, "Schema of the qualities response instead of the download response")
	schemaCmd.Flags().Bool("history", false, "Schema of a history entry")
	schemaCmd.MarkFlagsMutuallyExclusive("qualities", "history")
}

// schemaCmd prints the JSON schema of what --json flags output, for scripts consuming them.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the resolved media output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return filepath.Base(t.PkgPath()) + "." + t.Name()
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("qualities")):
			schema = reflector.Reflect(&api.Qualities{})
		case lo.Must(cmd.Flags().GetBool("history")):
			schema = reflector.Reflect([]*history.Entry{})
		default:
			schema = reflector.Reflect(&api.MediaResult{})
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
