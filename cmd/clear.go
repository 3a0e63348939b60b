package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidtogallery/vidtogallery/filesystem"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/style"
	"github.com/vidtogallery/vidtogallery/util"
	"github.com/vidtogallery/vidtogallery/where"
)

// clearable is application data that can be thrown away without losing videos.
type clearable struct {
	name     string
	location func() string
}

var clearables = []clearable{
	{"cache", where.Cache},
	{"history", where.History},
	{"temp", where.Temp},
	{"logs", where.Logs},
}

// diskUsage sums the sizes of the regular files under path. A missing path uses nothing.
func diskUsage(path string) (int64, error) {
	var total int64
	err := filesystem.API().Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	return total, err
}

// clearData removes the named targets and reports how much space each freed.
func clearData(w io.Writer, names []string) error {
	for _, name := range names {
		target, ok := lo.Find(clearables, func(c clearable) bool { return c.name == name })
		if !ok {
			return fmt.Errorf("nothing called %q can be cleared", name)
		}

		path := target.location()
		freed, err := diskUsage(path)
		if err != nil {
			return err
		}

		erase := util.PrintErasable(w, fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), name))
		err = util.Delete(path)
		erase()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("clear %s: %w", name, err)
		}

		fmt.Fprintf(w, "%s %s cleared %s\n", icon.Get(icon.Success), util.Capitalize(name), style.Faint(humanize.Bytes(uint64(freed))))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolP("all", "a", false, "Clear everything listed above")
	clearCmd.ValidArgs = lo.Map(clearables, func(c clearable, _ int) string { return c.name })
}

var clearCmd = &cobra.Command{
	Use:   "clear [cache|history|temp|logs...]",
	Short: "Remove cached and temporary data, history or logs",
	Args:  cobra.OnlyValidArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names := args
		if lo.Must(cmd.Flags().GetBool("all")) {
			names = cmd.ValidArgs
		}
		if len(names) == 0 {
			handleErr(cmd.Help())
			return
		}

		handleErr(clearData(cmd.OutOrStdout(), lo.Uniq(names)))
	},
}
