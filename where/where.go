// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/constant"
	"github.com/vidtogallery/vidtogallery/filesystem"
	"github.com/vidtogallery/vidtogallery/key"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "VIDTOGALLERY_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// home returns the user's home directory, or the working directory when it cannot be resolved.
func home() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return dir
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden via the VIDTOGALLERY_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the absolute path to the download history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Gallery resolves the folder that receives videos saved to the gallery.
func Gallery() string {
	if custom := viper.GetString(key.GalleryDir); custom != "" {
		return ensureDir(custom)
	}
	return ensureDir(filepath.Join(home(), "Videos", constant.App))
}

// Downloads resolves the folder that receives direct file downloads.
func Downloads() string {
	if custom := viper.GetString(key.DownloadsDir); custom != "" {
		return ensureDir(custom)
	}
	return ensureDir(filepath.Join(home(), "Downloads"))
}

// Temp resolves a volatile directory for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
