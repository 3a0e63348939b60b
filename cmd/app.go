package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/api"
	"github.com/vidtogallery/vidtogallery/auth"
	"github.com/vidtogallery/vidtogallery/delivery"
	"github.com/vidtogallery/vidtogallery/history"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/internal/ui"
	"github.com/vidtogallery/vidtogallery/key"
	"github.com/vidtogallery/vidtogallery/log"
	"github.com/vidtogallery/vidtogallery/network"
	"github.com/vidtogallery/vidtogallery/session"
	"github.com/vidtogallery/vidtogallery/style"
)

// newClient builds the backend client, attaching the stored token when there is one.
func newClient() *api.Client {
	var options []api.Option

	token, err := auth.GetToken()
	if err != nil {
		log.WithError(err).Warn("read backend token")
	} else if token != "" {
		options = append(options, api.WithToken(token))
	}

	return api.New(viper.GetString(key.APIBaseURL), network.Client, options...)
}

// newController wires the controller to the backend, the terminal host and the terminal toaster.
func newController() *session.Controller {
	client := newClient()

	host := delivery.NewHost()
	host.OnDelivered = func(strategy delivery.Strategy, location string) {
		fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(strategyIcon(strategy)), style.Faint(location))
	}

	return session.New(client, client, client, host, ui.NewToaster(os.Stderr))
}

func strategyIcon(s delivery.Strategy) icon.Icon {
	switch s {
	case delivery.Gallery:
		return icon.Gallery
	case delivery.Link:
		return icon.Link
	default:
		return icon.File
	}
}

// remember stores the resolved media of ctrl in the history when enabled.
func remember(ctrl *session.Controller) {
	if !viper.GetBool(key.HistorySave) {
		return
	}

	s := ctrl.Snapshot()
	media, ok := s.Media()
	if !ok {
		return
	}

	if _, err := history.Save(s.SourceURL, media); err != nil {
		log.WithError(err).Warn("save history")
	}
}
