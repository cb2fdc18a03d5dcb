package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Pick URLs, paths and other mentions out of text and act on them"
	MsgExtractShort    = "Print the mentions found in stdin, one selection per line"
	MsgExecuteShort    = "Run the action configured for a selection"
	MsgValueShort      = "Print the value of a selection"
	MsgPatternsShort   = "List the configured patterns and actions"
	MsgGenConfigShort  = "Print or write a starter configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgSnippetShort    = "Output tmux or shell integration snippet"

	// Status messages
	MsgConfigWritten = "Wrote configuration to %s\n"

	// Error messages
	MsgErrInvalidSelection = "invalid selection or action not found"
	MsgErrConfigExists     = "configuration already exists at %s, use --force to overwrite"
	MsgErrNoCommand        = "no command specified"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Configuration file (default $PATTERN_CONFIG, then $XDG_CONFIG_HOME/tpick/config.toml)"
	MsgFlagFormat   = "Output format: " + formatNames
	MsgFlagWrite    = "Write to the default configuration path instead of stdout"
	MsgFlagForce    = "Overwrite an existing configuration file"
	MsgFlagShell    = "Shell used to run commands (overrides settings.shell)"
	MsgFlagTimeout  = "Time limit per command attempt, 0 for none (overrides settings.timeout)"
	MsgFlagWorkDir  = "Base directory for relative paths (overrides settings.work_dir)"

	MsgFlagSnippetShell  = "Integration target (tmux, bash, zsh, fish)"
	MsgFlagSnippetKey    = "tmux key bound to the picker"
	MsgFlagSnippetBinary = "Command used to invoke tpick"
)

const formatNames = "auto, text, markdown, json, yaml, toml"

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/execute-long.txt
	msgExecuteLongRaw string
	MsgExecuteLong    = strings.TrimSpace(msgExecuteLongRaw)

	//go:embed msgs/gen-config-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/snippet-example.txt
	msgSnippetExampleRaw string
	MsgSnippetExample    = strings.TrimRight(msgSnippetExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
