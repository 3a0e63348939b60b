package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidtogallery/vidtogallery/style"
	"github.com/vidtogallery/vidtogallery/where"
)

// location is a folder or file the application reads or writes.
type location struct {
	name    string
	resolve func() string
	// internal locations are only listed when asked for by name
	internal bool
}

var locations = []location{
	{"config", where.Config, false},
	{"gallery", where.Gallery, false},
	{"downloads", where.Downloads, false},
	{"history", where.History, false},
	{"logs", where.Logs, false},
	{"cache", where.Cache, true},
	{"temp", where.Temp, true},
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	whereCmd.ValidArgs = lo.Map(locations, func(l location, _ int) string { return l.name })
}

var whereCmd = &cobra.Command{
	Use:   "where [location]",
	Short: "Show where videos, settings and logs are kept",
	Args:  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			l, _ := lo.Find(locations, func(l location) bool { return l.name == args[0] })
			fmt.Fprintln(cmd.OutOrStdout(), l.resolve())
			return
		}

		shown := lo.Reject(locations, func(l location, _ int) bool { return l.internal })
		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(shown, func(l location) (string, string) { return l.name, l.resolve() })
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(paths))
			return
		}

		width := lo.Max(lo.Map(shown, func(l location, _ int) int { return len(l.name) }))
		label := style.New().Bold(true).Foreground(style.SecondaryColor).Width(width + 2).Render
		for _, l := range shown {
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", label(l.name), l.resolve())
		}
	},
}
