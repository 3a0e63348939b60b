package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidtogallery/vidtogallery/delivery"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/style"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd reports whether the backend is reachable and what this device can deliver to.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the backend and the delivery methods available on this device",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		started := time.Now()
		health, err := client.Health(cmd.Context())
		if err != nil {
			printCheckError(cmd, client.BaseURL(), err)
		}

		ok := func(s string) string { return style.Fg(style.SuccessColor)(icon.Get(icon.Success)) + " " + s }
		no := func(s string) string { return style.Fg(style.ErrorColor)(icon.Get(icon.Fail)) + " " + style.Faint(s) }

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, style.Title("Backend"))
		fmt.Fprintln(out, ok(fmt.Sprintf("%s is %s (%s, %s)", health.Service, health.Status, client.BaseURL(), time.Since(started).Round(time.Millisecond))))
		fmt.Fprintln(out)

		caps := delivery.NewHost().Capabilities()
		fmt.Fprintln(out, style.Title("Delivery"))
		for _, s := range []delivery.Strategy{delivery.Gallery, delivery.Download, delivery.Link} {
			line := lo.Ternary(caps.Supports(s), ok, no)
			fmt.Fprintln(out, line(deliveryLabels[s]))
		}
	},
}

func printCheckError(cmd *cobra.Command, baseURL string, err error) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Backend unreachable", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(err.Error())
	hint := fmt.Sprintf("Is the backend running at %s?\nChange it with: %s",
		style.Link(baseURL),
		style.New().Foreground(style.AccentColor).Bold(true).Render("vidtogallery config set api.base_url <url>"),
	)

	fmt.Fprintln(cmd.ErrOrStderr(), box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint)))
	handleErr(fmt.Errorf("health check failed"))
}
