package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/constant"
	"github.com/vidtogallery/vidtogallery/key"
	"github.com/vidtogallery/vidtogallery/style"
	"github.com/vidtogallery/vidtogallery/version"
)

// buildInfo is the metadata stamped into the binary at release time.
type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
	Backend  string `json:"backend_api"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Backend:  viper.GetString(key.APIBaseURL),
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if lo.Must(cmd.Flags().GetBool("short")) {
			fmt.Fprintln(out, constant.Version)
			return
		}

		info := currentBuild()
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(out).Encode(info))
			return
		}

		defer version.Notify(cmd.Context(), out)

		label := style.New().Faint(true).Width(12).Render
		fmt.Fprintf(out, "%s %s\n\n", style.Fg(style.AccentColor)("▇▇▇"), style.Bold(constant.App))
		for _, row := range [][2]string{
			{"Version", info.Version},
			{"Revision", info.Revision},
			{"Built at", info.BuiltAt},
			{"Built by", info.BuiltBy},
			{"Platform", info.Platform},
			{"Backend", info.Backend},
		} {
			fmt.Fprintf(out, "  %s%s\n", label(row[0]), style.Bold(row[1]))
		}
	},
}
