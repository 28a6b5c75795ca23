// Package config loads the itemdeck configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/itemdeck/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # File Format
//
//	catalog_url     = "https://server-api.arizona.games/client/json/table/get?project=arizona&server=0&key=inventory_items"
//	asset_base      = "https://reserve-cdn.azresources.cloud/projects/arizona-rp/assets/images/donate/"
//	batch_size      = 40       # cards added per scroll step
//	range_start     = 9760     # initial value of the "from" field
//	range_end       = 10000    # initial value of the "to" field
//	request_timeout = "10s"
//	probe_rate      = 8.0      # asset probes per second
//	probe_burst     = 4
//	log_file        = "~/.local/state/itemdeck/itemdeck.log"
//	log_level       = "info"   # trace, debug, info, warn, error
//
// Paths beginning with ~ are expanded to the user's home directory.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML and an
// unparseable request_timeout are returned as errors wrapped with context
// ("open config", "read config", "parse config").
package config
