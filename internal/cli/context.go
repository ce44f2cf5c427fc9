package cli

import (
	"fmt"
	"os"

	"github.com/permaudit-project/permaudit/pkg/color"
	"github.com/permaudit-project/permaudit/pkg/config"
	"github.com/permaudit-project/permaudit/pkg/logging"
	"github.com/permaudit-project/permaudit/pkg/pathutil"
)

// requireConfig loads the configuration and initializes color and logging,
// or exits with error.
func requireConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmtErr("load config: %v", err)
		os.Exit(1)
	}
	color.Init(noColor)
	logging.SetGlobal(logging.New(logging.ParseLevel(cfg.Logging.Level)))
	return cfg
}

// requireParent validates the parent directory argument, or exits with error.
func requireParent(path string) string {
	if err := pathutil.ValidateParent(path); err != nil {
		fmtErr("invalid parent folder %q: %v", path, err)
		os.Exit(1)
	}
	return path
}

func fmtErr(format string, args ...any) {
	// Colorize the error prefix
	prefix := "permaudit: "
	if color.Enabled() {
		prefix = color.Red("permaudit:") + " "
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}
