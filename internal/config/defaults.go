package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	envPrefix = "BATCHDL"

	defaultConcurrency = 50
	defaultLogLevel    = "info"
	defaultUserAgent   = "batchdl/1.0"
)

func defaultDownloadDir() string {
	if dir := xdg.UserDirs.Download; dir != "" {
		return filepath.Join(dir, "batchdl")
	}

	return filepath.Join(os.TempDir(), "batchdl")
}
