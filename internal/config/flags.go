package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
	flagShaderDir    = flag.String("shader-dir", "", "Load shaders from this directory instead of the built-in ones")
	flagWatchShaders = flag.Bool("watch-shaders", false, "Reload shaders when files in -shader-dir change")
	flagWriteConfig  = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagSaveConfig   = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path given with -config.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the -write-config target, or "".
func WriteConfigPath() string {
	return *flagWriteConfig
}

// SaveConfigRequested reports whether -save-config was given.
func SaveConfigRequested() bool {
	return *flagSaveConfig
}

func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagShaderDir != "" {
		cfg.Shaders.Dir = *flagShaderDir
	}
	if *flagWatchShaders {
		cfg.Shaders.Watch = true
	}
}
