// Package config provides configuration management for the command line
// client. It uses viper for loading configuration from command-line flags and
// environment variables.
//
// Configuration priority (highest to lowest):
// 1. Command-line flags
// 2. Environment variables (with BOTLIBRE_ prefix)
// 3. Defaults
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the client.
type Config struct {
	// Host is the server host name.
	// Defaults to "www.botlibre.com"
	Host string

	// App is the application path prefix on the host, normally empty.
	App string

	// Scheme is "https" or "http".
	// Defaults to "https"
	Scheme string

	// ApplicationID authenticates API usage. It is obtained from the user
	// details page on the hosting website.
	ApplicationID string

	// User is the user id to connect with. Anonymous when empty.
	User string

	// Password is the user's password. Ignored when a token is set.
	Password string

	// Token is the user's access token, as returned from a previous connect.
	Token string

	// Domain is the id of the content domain to work in, an isolated content
	// space. The server's default domain when empty.
	Domain string

	// Debug logs every request and its XML.
	Debug bool
}

// Defaults returns a Config struct with all default values set.
func Defaults() *Config {
	return &Config{
		Host:   "www.botlibre.com",
		Scheme: "https",
	}
}

// LoadConfig loads and returns the configuration from viper. It sets up
// environment variable bindings with the BOTLIBRE_ prefix.
//
// The caller is expected to have set up viper with BindPFlag() calls for
// command-line flags before calling this function.
func LoadConfig() *Config {
	cfg := Defaults()

	viper.SetEnvPrefix("BOTLIBRE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if viper.IsSet("host") {
		cfg.Host = viper.GetString("host")
	}
	if viper.IsSet("app") {
		cfg.App = viper.GetString("app")
	}
	if viper.IsSet("scheme") {
		cfg.Scheme = viper.GetString("scheme")
	}
	if viper.IsSet("application_id") {
		cfg.ApplicationID = viper.GetString("application_id")
	}
	if viper.IsSet("user") {
		cfg.User = viper.GetString("user")
	}
	if viper.IsSet("password") {
		cfg.Password = viper.GetString("password")
	}
	if viper.IsSet("token") {
		cfg.Token = viper.GetString("token")
	}
	if viper.IsSet("domain") {
		cfg.Domain = viper.GetString("domain")
	}
	if viper.IsSet("debug") {
		cfg.Debug = viper.GetBool("debug")
	}

	return cfg
}
