package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage a user account",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user account",
	Long: `Create a new user account on the server.

The user id and password come from the root --user and --password
flags; the account details come from this command's flags. An email is
required for message notification and password reset.`,
	RunE: runUserCreate,
}

var userUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the connected user's details",
	Long: `Update the connected user's account details.

The password must be passed to allow the update.`,
	RunE: runUserUpdate,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userUpdateCmd)

	for _, command := range []*cobra.Command{userCreateCmd, userUpdateCmd} {
		command.Flags().String("name", "", "Real name of the user")
		command.Flags().Bool("show-name", false, "Show the real name to other users")
		command.Flags().String("email", "", "Email address for notifications")
		command.Flags().String("website", "", "User website")
		command.Flags().String("bio", "", "User bio")
		command.Flags().String("hint", "", "Password hint")
		command.Flags().Bool("over18", false, "User is over 18")
	}
	userUpdateCmd.Flags().String("new-password", "", "New password to set")
}

func userFromFlags(cmd *cobra.Command) *dto.UserConfig {
	user := &dto.UserConfig{}
	user.User = cfg.User
	user.Password = cfg.Password
	user.Name, _ = cmd.Flags().GetString("name")
	user.ShowName, _ = cmd.Flags().GetBool("show-name")
	user.Email, _ = cmd.Flags().GetString("email")
	user.Website, _ = cmd.Flags().GetString("website")
	user.Bio, _ = cmd.Flags().GetString("bio")
	user.Hint, _ = cmd.Flags().GetString("hint")
	user.Over18, _ = cmd.Flags().GetBool("over18")
	return user
}

// runUserCreate executes the user create command
func runUserCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if cfg.User == "" || cfg.Password == "" {
		return errors.New("the --user and --password flags are required")
	}
	// The account does not exist yet; do not connect it.
	saved := cfg.User
	cfg.User = ""
	connection, err := openConnection(ctx)
	cfg.User = saved
	if err != nil {
		return err
	}

	user, err := connection.CreateUser(ctx, userFromFlags(cmd))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (token %s)\n", user.User, user.Token)
	return nil
}

// runUserUpdate executes the user update command
func runUserUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	connection, err := openConnection(ctx)
	if err != nil {
		return err
	}

	user := userFromFlags(cmd)
	user.NewPassword, _ = cmd.Flags().GetString("new-password")
	if err := connection.UpdateUser(ctx, user); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s\n", user.User)
	return nil
}
