// Package paths provides centralized path handling for tpick.
//
// It covers the small set of filesystem questions the tool has to answer:
//
//   - Where the configuration file lives
//   - Home directory lookup and ~ expansion of matched values
//   - The work directory used to resolve relative file mentions
//
// # Environment Variables
//
//   - PATTERN_CONFIG: path to the configuration file
//   - WORK_DIR: base directory for relative path resolution (default: cwd)
//   - XDG_CONFIG_HOME: searched for tpick/config.toml when PATTERN_CONFIG is unset
//
// # Usage
//
//	path, err := paths.FindConfigFile(flagValue)
//	if err != nil {
//	    return err
//	}
//
//	value := paths.ExpandHome("~/notes.md") // /home/user/notes.md
package paths
