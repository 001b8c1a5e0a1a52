package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/subharanjan2019/BotLibre/internal/config"
	"github.com/subharanjan2019/BotLibre/sdk"
	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// global config shared between commands.
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "botlibre",
	Short: "Client for bots, forums, and live chat channels",
	Long: `botlibre is a command line client for the BotLibre platform.

It can chat with a bot, browse and fetch content, join a live chat
channel, manage a user account, and upload forum attachments.

An application id is required for API access, and is obtained from your
user details page on the hosting website.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadConfig()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	return rootCmd.Execute()
}

// openConnection builds an SDK connection from the configuration, connecting
// the configured user and domain when set.
func openConnection(ctx context.Context) (*sdk.SDKConnection, error) {
	connection := sdk.NewSDKConnection(&sdk.Credentials{
		Host:          cfg.Host,
		App:           cfg.App,
		Path:          "/rest/api",
		ApplicationID: cfg.ApplicationID,
		Scheme:        cfg.Scheme,
	})
	connection.Debug = cfg.Debug

	if cfg.User != "" {
		login := &dto.UserConfig{}
		login.User = cfg.User
		login.Password = cfg.Password
		login.Token = cfg.Token
		if _, err := connection.Connect(ctx, login); err != nil {
			return nil, fmt.Errorf("failed to connect user: %w", err)
		}
	}
	if cfg.Domain != "" {
		domain := &dto.DomainConfig{}
		domain.ID = cfg.Domain
		if _, err := connection.SwitchDomain(ctx, domain); err != nil {
			return nil, fmt.Errorf("failed to switch domain: %w", err)
		}
	}
	return connection, nil
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind %s flag: %v\n", flag, err)
	}
}

func init() {
	rootCmd.PersistentFlags().String("host", "www.botlibre.com", "Server host name")
	rootCmd.PersistentFlags().String("app", "", "Application path prefix on the host")
	rootCmd.PersistentFlags().String("scheme", "https", "URL scheme (https or http)")
	rootCmd.PersistentFlags().String("app-id", "", "Application id for API access")
	rootCmd.PersistentFlags().String("user", "", "User id to connect with")
	rootCmd.PersistentFlags().String("password", "", "User password")
	rootCmd.PersistentFlags().String("token", "", "User access token, used in place of the password")
	rootCmd.PersistentFlags().String("domain", "", "Content domain id to work in")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every request and its XML")

	bindFlag("host", "host")
	bindFlag("app", "app")
	bindFlag("scheme", "scheme")
	bindFlag("application_id", "app-id")
	bindFlag("user", "user")
	bindFlag("password", "password")
	bindFlag("token", "token")
	bindFlag("domain", "domain")
	bindFlag("debug", "debug")
}
