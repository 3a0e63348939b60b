// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/vidtogallery/vidtogallery/constant"
	"github.com/vidtogallery/vidtogallery/key"
	"github.com/vidtogallery/vidtogallery/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.APIBaseURL, "http://localhost:8080", "Base URL of the vidtogallery backend")
	register(key.APITimeout, 120, "Timeout in seconds for a single backend request.\nProxy downloads stream the whole video, keep it generous")
	register(key.APITLSFingerprint, false, "Use a browser TLS fingerprint when talking to the backend.\nUseful when the backend sits behind an anti-bot proxy")
	register(key.DeliveryDefault, "auto", "How to deliver a downloaded video.\nAvailable options are: auto, gallery, file, link, none")
	register(key.GalleryEnable, true, "Allow saving videos to the gallery folder")
	register(key.GalleryDir, "", "Gallery folder. Defaults to the user's videos directory")
	register(key.GalleryReveal, false, "Open the gallery folder after saving a video")
	register(key.DownloadsDir, "", "Folder for direct file downloads. Defaults to the user's downloads directory")
	register(key.QualityDefault, "", "Preferred quality identifier (e.g. \"hd\").\nFalls back to the best available quality when missing")
	register(key.HistorySave, true, "Remember resolved downloads")
	register(key.ToastAnimate, true, "Show an animated spinner while waiting for the backend")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"accent":   style.Fg(style.AccentColor),
	"label":    style.Fg(style.SecondaryColor),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(style.SuccessColor)(b)
			}
			return style.Fg(style.ErrorColor)(b)
		case string:
			return style.Fg(style.WarningColor)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ label "Key:" }}     {{ accent .Key }}
{{ label "Env:" }}     {{ .Env }}
{{ label "Value:" }}   {{ hl (value .Key) }}
{{ label "Default:" }} {{ hl (.Value) }}
{{ label "Type:" }}    {{ typename .Value }}`))
