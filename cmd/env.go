package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidtogallery/vidtogallery/config"
	"github.com/vidtogallery/vidtogallery/style"
	"github.com/vidtogallery/vidtogallery/where"
	"golang.org/x/exp/slices"
)

// envVar is an environment variable the application reads, with its current value.
type envVar struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Key   string `json:"key,omitempty"`
	Set   bool   `json:"set"`
}

// envVars lists every variable bound to a setting plus the config path override, sorted by name.
func envVars(lookup func(string) (string, bool)) []envVar {
	vars := lo.Map(config.EnvExposed, func(name string, _ int) envVar {
		field := config.Default[name]
		return envVar{Name: field.Env(), Key: name}
	})
	vars = append(vars, envVar{Name: where.EnvConfigPath})

	for i := range vars {
		vars[i].Value, vars[i].Set = lookup(vars[i].Name)
	}
	slices.SortFunc(vars, func(a, b envVar) int {
		return strings.Compare(a.Name, b.Name)
	})
	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables that override settings",
	Run: func(cmd *cobra.Command, args []string) {
		vars := envVars(os.LookupEnv)
		if lo.Must(cmd.Flags().GetBool("set")) {
			vars = lo.Filter(vars, func(v envVar, _ int) bool { return v.Set })
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(vars))
			return
		}

		name := style.New().Bold(true).Foreground(style.AccentColor).Render
		for _, v := range vars {
			value := style.Faint("unset")
			if v.Set {
				value = style.Fg(style.SuccessColor)(v.Value)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name(v.Name), value)
		}
	},
}
