package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/api"
	"github.com/vidtogallery/vidtogallery/delivery"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/key"
	"github.com/vidtogallery/vidtogallery/session"
)

var errNoQualities = errors.New("the backend offered no qualities for this video")

// acquire runs one video through qualities, download and delivery, prompting where a choice is needed.
func acquire(ctx context.Context, ctrl *session.Controller, url, preferred string) error {
	if err := ctrl.ResolveQualities(ctx, url); err != nil {
		return err
	}

	s := ctrl.Snapshot()
	if len(s.Qualities) == 0 {
		fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), errNoQualities)
		return errNoQualities
	}

	quality, err := chooseQuality(s)
	if err != nil {
		return err
	}
	if err := ctrl.SelectQuality(quality.Identifier); err != nil {
		return err
	}

	if err := ctrl.Download(ctx, url, quality.Identifier); err != nil {
		return err
	}
	remember(ctrl)

	media, _ := ctrl.Snapshot().Media()
	printMedia(os.Stdout, media)

	strategy, err := chooseDelivery(ctrl.Capabilities(), preferred)
	if err != nil || strategy == nil {
		return err
	}

	_, err = ctrl.Deliver(ctx, *strategy)
	return err
}

// chooseQuality prefers the configured default quality and otherwise asks, suggesting the first option.
func chooseQuality(s session.Session) (api.QualityOption, error) {
	if configured := viper.GetString(key.QualityDefault); configured != "" {
		if q, ok := findQuality(s.Qualities, configured); ok {
			return q, nil
		}
	}

	selected, _ := s.Quality()
	if len(s.Qualities) == 1 {
		return selected, nil
	}

	labels := lo.Map(s.Qualities, func(q api.QualityOption, _ int) string {
		return qualityLabel(q)
	})

	var index int
	err := survey.AskOne(&survey.Select{
		Message: "Quality:",
		Options: labels,
		Default: qualityLabel(selected),
	}, &index)
	if err != nil {
		return api.QualityOption{}, err
	}

	return s.Qualities[index], nil
}

// findQuality matches an identifier or a label, e.g. "hd" or "1080p".
func findQuality(qualities []api.QualityOption, name string) (api.QualityOption, bool) {
	return lo.Find(qualities, func(q api.QualityOption) bool {
		return q.Identifier == name || q.Label == name
	})
}

// chooseDelivery resolves the delivery method: the flag, then a non-auto configured default,
// then a prompt listing what the host supports. A nil strategy means the user skipped delivery.
func chooseDelivery(caps delivery.Capabilities, preferred string) (*delivery.Strategy, error) {
	if preferred == "" && viper.GetString(key.DeliveryDefault) != delivery.Auto.String() {
		preferred = viper.GetString(key.DeliveryDefault)
	}
	if preferred != "" {
		return parseDelivery(preferred)
	}

	available := caps.Available()
	if len(available) == 0 {
		return nil, nil
	}

	options := append(lo.Map(available, func(s delivery.Strategy, _ int) string {
		return deliveryLabels[s]
	}), deliveryLabels[skip])

	var index int
	if err := survey.AskOne(&survey.Select{Message: "Deliver to:", Options: options}, &index); err != nil {
		return nil, err
	}

	if index >= len(available) {
		return nil, nil
	}
	return &available[index], nil
}

// skip is the prompt entry for leaving the video where it is.
const skip delivery.Strategy = -1

var deliveryLabels = map[delivery.Strategy]string{
	delivery.Gallery:  "Save to gallery",
	delivery.Download: "Download file",
	delivery.Link:     "Copy link",
	skip:              "Nothing, just show the link",
}
