package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidtogallery/vidtogallery/history"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/style"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.PersistentFlags().BoolP("json", "j", false, "Format the output as JSON")

	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously downloaded videos",
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.List()
		handleErr(err)
		printEntries(cmd, entries)
	},
}

var historySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search previously downloaded videos by title, URL or platform",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.Search(args[0])
		handleErr(err)
		printEntries(cmd, entries)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every downloaded video",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Clear())
		fmt.Fprintf(cmd.OutOrStdout(), "%s history cleared\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)))
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove [query]",
	Short: "Pick downloaded videos to forget, optionally narrowed by a search",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		removed, err := forget(query, func(options []string) ([]string, error) {
			var picked []string
			err := survey.AskOne(&survey.MultiSelect{Message: "Forget:", Options: options}, &picked)
			return picked, err
		})
		handleErr(err)
		fmt.Fprintf(cmd.OutOrStdout(), "%s forgot %d %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), removed, lo.Ternary(removed == 1, "video", "videos"))
	},
}

// forget offers the entries matching query to pick and removes the picked ones.
func forget(query string, pick func(options []string) ([]string, error)) (int, error) {
	entries, err := history.List()
	if query != "" {
		entries, err = history.Search(query)
	}
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	options := make([]string, len(entries))
	byOption := make(map[string]*history.Entry, len(entries))
	for i, e := range entries {
		options[i] = fmt.Sprintf("%d. %s", i+1, e)
		byOption[options[i]] = e
	}

	picked, err := pick(options)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, option := range picked {
		entry, ok := byOption[option]
		if !ok {
			continue
		}
		if err := history.Remove(entry); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func printEntries(cmd *cobra.Command, entries []*history.Entry) {
	if lo.Must(cmd.Flags().GetBool("json")) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(entries))
		return
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), style.Faint("nothing here yet"))
		return
	}

	for i, entry := range entries {
		printEntry(cmd.OutOrStdout(), entry)
		if i < len(entries)-1 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}
}

func printEntry(w io.Writer, entry *history.Entry) {
	printMedia(w, entry.Media)
	fmt.Fprintf(w, "  %s %s\n", style.Faint("from"), entry.SourceURL)
}
