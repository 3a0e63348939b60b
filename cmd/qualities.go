package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/style"
)

func init() {
	rootCmd.AddCommand(qualitiesCmd)
	qualitiesCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

var qualitiesCmd = &cobra.Command{
	Use:   "qualities <url>",
	Short: "List the qualities a video is available in",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctrl := newController()
		handleErr(ctrl.ResolveQualities(cmd.Context(), args[0]))

		s := ctrl.Snapshot()
		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(struct {
				Platform  string `json:"platform"`
				Qualities any    `json:"available_qualities"`
			}{s.Platform, s.Qualities}))
			return
		}

		for _, q := range s.Qualities {
			marker := " "
			if q.Identifier == s.SelectedQuality {
				marker = icon.Get(icon.Success)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", marker, style.Quality(q.Identifier), qualityLabel(q))
		}
	},
}
