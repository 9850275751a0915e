// Package config loads collsh settings with Viper.
//
// Sources, lowest precedence first: built-in defaults, a config file, and
// COLLSH_* environment variables. The file is either given explicitly or
// found as config.{toml,yaml,yml,json} in $XDG_CONFIG_HOME/collsh
// (~/.config/collsh when unset).
package config
