// Package cmd implements the command-line interface for vidtogallery.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/color"
	"github.com/vidtogallery/vidtogallery/constant"
	"github.com/vidtogallery/vidtogallery/delivery"
	"github.com/vidtogallery/vidtogallery/history"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/key"
	"github.com/vidtogallery/vidtogallery/log"
	"github.com/vidtogallery/vidtogallery/session"
	"github.com/vidtogallery/vidtogallery/style"
	"github.com/vidtogallery/vidtogallery/util"
	"github.com/vidtogallery/vidtogallery/version"
	"github.com/vidtogallery/vidtogallery/where"
)

// skipDelivery is offered next to the delivery methods when the user only wants the link resolved.
const skipDelivery = "none"

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("api", "A", "", "Backend base URL")
	lo.Must0(viper.BindPFlag(key.APIBaseURL, rootCmd.PersistentFlags().Lookup("api")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember downloaded videos in the history")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.Flags().StringP("deliver", "d", "", "Delivery method: "+strings.Join(deliveryChoices(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("deliver", completionDelivery))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context(), os.Stdout)
	})

	// Leftover temporary files from interrupted downloads.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd is the interactive entry point: paste a URL, pick a quality, pick where the video goes.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [url]",
	Short: "Save videos from social platforms to your gallery",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Red).Render("    - Save videos from social platforms to your gallery"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.SetContext(cmd.Context())
			versionCmd.Run(versionCmd, args)
			return
		}

		preferred := lo.Must(cmd.Flags().GetString("deliver"))
		if preferred != "" {
			_, err := parseDelivery(preferred)
			handleErr(err)
		}

		var url string
		if len(args) > 0 {
			url = args[0]
		}

		err := interactive(cmd.Context(), newController(), url, preferred)
		if errors.Is(err, terminal.InterruptErr) {
			return
		}
		handleErr(err)
	},
}

// interactive walks the user through one video after another until they decline to continue.
func interactive(ctx context.Context, ctrl *session.Controller, url, preferred string) error {
	for {
		if url == "" {
			prompt := &survey.Input{Message: "Video URL:", Suggest: history.Suggest}
			if err := survey.AskOne(prompt, &url, survey.WithValidator(survey.Required)); err != nil {
				return err
			}
			url = strings.TrimSpace(url)
		}

		// failures are already reported by the toaster
		if err := acquire(ctx, ctrl, url, preferred); err != nil {
			log.WithError(err).Debugf("interactive flow")
		}

		var again bool
		if err := survey.AskOne(&survey.Confirm{Message: "Another video?", Default: false}, &again); err != nil {
			return err
		}
		if !again {
			return nil
		}

		ctrl.Reset()
		url = ""
	}
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func deliveryChoices() []string {
	return append(delivery.StrategyNames(), skipDelivery)
}

func completionDelivery(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return deliveryChoices(), cobra.ShellCompDirectiveNoFileComp
}

// parseDelivery accepts a delivery method name or "none". A nil strategy means skip delivery.
func parseDelivery(name string) (*delivery.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(name), skipDelivery) {
		return nil, nil
	}
	s, err := delivery.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
