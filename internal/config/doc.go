// Package config loads tally's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tally/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Configuration Fields
//
//	storage    = "file"                            # file | bolt | memory
//	store_path = "~/.local/share/tally/state.toml" # state.db for bolt
//	theme      = "Nightfox"                        # used until a theme is saved
//	log_file   = "~/.local/state/tally/tally.log"  # "-" disables logging
//	log_level  = "info"                            # any zerolog level name
//
// String values are trimmed and a leading "~" is expanded to the user's home
// directory. Changing storage without a store_path switches to that backend's
// default path.
//
// # Error Handling
//
// A missing file is not an error. A file that cannot be read, is not valid
// TOML, names an unknown storage backend or an unknown log level fails Load
// with a wrapped error mentioning the problem.
package config
