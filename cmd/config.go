package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/config"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/key"
	"github.com/vidtogallery/vidtogallery/style"
)

// settingCheck rejects values that have the right type but make no sense for the key.
type settingCheck func(value any) error

var settingChecks = map[string]settingCheck{
	key.APIBaseURL: func(v any) error {
		u, err := url.ParseRequestURI(v.(string))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%q is not an http(s) URL", v)
		}
		return nil
	},
	key.APITimeout: func(v any) error {
		if v.(int) <= 0 {
			return errors.New("timeout must be a positive number of seconds")
		}
		return nil
	},
	key.DeliveryDefault: func(v any) error {
		_, err := parseDelivery(v.(string))
		return err
	},
	key.IconsVariant: func(v any) error {
		if !lo.Contains(icon.AvailableVariants(), v.(string)) {
			return fmt.Errorf("unknown icons variant %q, available: %s", v, strings.Join(icon.AvailableVariants(), ", "))
		}
		return nil
	},
	key.LogsLevel: func(v any) error {
		_, err := logrus.ParseLevel(v.(string))
		return err
	},
}

func errUnknownKey(name string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(style.ErrorColor)(name),
		style.Fg(style.WarningColor)(closest),
	)
}

func lookupField(name string) (config.Field, error) {
	field, ok := config.Default[name]
	if !ok {
		return config.Field{}, errUnknownKey(name)
	}
	return field, nil
}

// parseSetting converts raw command line words into a value of the key's type and validates it.
func parseSetting(name string, raw []string) (any, error) {
	field, err := lookupField(name)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", name)
	}

	var value any
	switch field.Value.(type) {
	case string:
		value = strings.Join(raw, " ")
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", name, raw[0])
		}
		value = n
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", name, raw[0])
		}
		value = b
	case []string:
		value = raw
	default:
		return nil, fmt.Errorf("%s cannot be set from the command line", name)
	}

	if check, ok := settingChecks[name]; ok {
		if err := check(value); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return value, nil
}

// persist writes the in-memory configuration, creating the file on first use.
func persist() error {
	err := viper.WriteConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return viper.SafeWriteConfig()
	}
	return err
}

func completionConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := lo.Keys(config.Default)
	sort.Strings(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")

	configCmd.AddCommand(configGetCmd, configSetCmd, configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
}

var configCmd = &cobra.Command{
	Use:               "config [key...]",
	Short:             "Show settings with their current values",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)
		if len(args) > 0 {
			fields = make([]config.Field, 0, len(args))
			for _, name := range args {
				field, err := lookupField(name)
				handleErr(err)
				fields = append(fields, field)
			}
		}
		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(lo.ToSlicePtr(fields)))
			return
		}

		fmt.Fprint(cmd.OutOrStdout(), strings.Join(lo.Map(fields, func(f config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
		fmt.Fprintln(cmd.OutOrStdout())
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := lookupField(args[0])
		handleErr(err)
		fmt.Fprintln(cmd.OutOrStdout(), viper.Get(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value...>",
	Short:             "Change a setting and save it to the config file",
	Example:           "  vidtogallery config set delivery.default gallery\n  vidtogallery config set api.base_url https://api.example.com",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		value, err := parseSetting(args[0], args[1:])
		handleErr(err)

		viper.Set(args[0], value)
		handleErr(persist())

		fmt.Fprintf(
			cmd.OutOrStdout(),
			"%s %s = %s\n",
			style.Fg(style.SuccessColor)(icon.Get(icon.Success)),
			style.Fg(style.AccentColor)(args[0]),
			style.Fg(style.WarningColor)(fmt.Sprint(value)),
		)
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key...]",
	Short:             "Restore settings to their defaults",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) > 0) {
			handleErr(errors.New("pass either keys or --all"))
		}

		names := args
		if all {
			names = lo.Keys(config.Default)
		}

		for _, name := range names {
			field, err := lookupField(name)
			handleErr(err)
			viper.Set(name, field.Value)
		}
		handleErr(persist())

		if all {
			fmt.Fprintf(cmd.OutOrStdout(), "%s every setting restored\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)))
			return
		}
		for _, name := range names {
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s %s = %s\n",
				style.Fg(style.SuccessColor)(icon.Get(icon.Success)),
				style.Fg(style.AccentColor)(name),
				style.Fg(style.WarningColor)(fmt.Sprint(config.Default[name].Value)),
			)
		}
	},
}
