package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/vidtogallery/vidtogallery/auth"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authDeleteCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the access token sent to the backend",
}

var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the backend access token in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		if len(args) > 0 {
			token = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{Message: "Access token:"}, &token))
		}

		token = strings.TrimSpace(token)
		if token == "" {
			handleErr(errors.New("token is empty"))
		}

		handleErr(auth.SetToken(token))
		fmt.Fprintf(cmd.OutOrStdout(), "%s token saved\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)))
	},
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Remove the backend access token from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Fprintf(cmd.OutOrStdout(), "%s token deleted\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)))
	},
}
