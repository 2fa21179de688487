package cascade

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve cascading configuration for files"
	MsgResolveShort    = "Print the effective configuration of files"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Generate one man page per command into the given directory (default: current directory)."

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRCName       = "Base name of rc files to search for"
	MsgFlagRCPath       = "Configuration file applied over discovered files"
	MsgFlagPackageField = "Field of package.json files holding configuration"
	MsgFlagNoConfig     = "Do not search for configuration files"
	MsgFlagSetting      = "Set a setting as key=value (repeatable)"
	MsgFlagUse          = "Enable a plugin (repeatable)"
	MsgFlagOutput       = "Set the output setting"
	MsgFlagCwd          = "Directory relative paths are resolved against"
	MsgFlagConfig       = "Settings file (default: $XDG_CONFIG_HOME/cascade/config.toml)"
	MsgFlagFormat       = "Output format: json, yaml or toml"
	MsgFlagNoColor      = "Disable colored output"

	// Status messages
	MsgVersionFormat  = "cascade version %s\n"
	MsgCommitFormat   = "  commit: %s\n"
	MsgBuiltFormat    = "  built:  %s\n"
	MsgNoCommand      = "no command specified"
	MsgResolveFailed  = "failed to resolve %d of %d files"
	MsgCommandStarted = "Command started"
)

// Long messages
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
