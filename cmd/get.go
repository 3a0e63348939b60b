package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/key"
)

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringP("quality", "q", "", "Quality identifier or label, defaults to the best available")
	getCmd.Flags().StringP("deliver", "d", "", "Delivery method: auto, gallery, file, link or none (defaults to "+key.DeliveryDefault+")")
	getCmd.Flags().BoolP("json", "j", false, "Print the resolved media as JSON")
	lo.Must0(getCmd.RegisterFlagCompletionFunc("deliver", completionDelivery))
}

// getCmd is the non-interactive flow, suitable for scripts.
var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Download a video and deliver it without prompting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx     = cmd.Context()
			url     = args[0]
			quality = lo.Must(cmd.Flags().GetString("quality"))
			deliver = lo.Must(cmd.Flags().GetString("deliver"))
			asJSON  = lo.Must(cmd.Flags().GetBool("json"))
		)

		if deliver == "" {
			deliver = viper.GetString(key.DeliveryDefault)
		}
		strategy, err := parseDelivery(deliver)
		handleErr(err)

		if quality == "" {
			quality = viper.GetString(key.QualityDefault)
		}

		ctrl := newController()
		handleErr(ctrl.ResolveQualities(ctx, url))

		s := ctrl.Snapshot()
		if len(s.Qualities) == 0 {
			handleErr(errNoQualities)
		}
		if quality != "" {
			q, ok := findQuality(s.Qualities, quality)
			if !ok {
				handleErr(fmt.Errorf("quality %q is not available, try one of: %s", quality, qualityNames(s.Qualities)))
			}
			handleErr(ctrl.SelectQuality(q.Identifier))
		}

		handleErr(ctrl.Download(ctx, url, ctrl.Snapshot().SelectedQuality))
		remember(ctrl)

		media, _ := ctrl.Snapshot().Media()
		if asJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(media))
		} else {
			printMedia(cmd.OutOrStdout(), media)
		}

		if strategy == nil {
			return
		}

		_, err = ctrl.Deliver(ctx, *strategy)
		handleErr(err)
	},
}
