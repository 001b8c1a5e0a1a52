package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the details of a content instance",
	Long: `Fetch the details of a single content instance by id or name.

The type is the lowercase content tag: instance, forum, channel,
domain, avatar, script, or graphic.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("type", "instance", "Content tag (instance, forum, channel, domain, avatar, script, graphic)")
	fetchCmd.Flags().String("id", "", "Content id or name")
}

// runFetch executes the fetch command
func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	tag, _ := cmd.Flags().GetString("type")
	id, _ := cmd.Flags().GetString("id")
	if id == "" {
		return errors.New("the --id flag is required")
	}
	request, ok := dto.NewWebMedium(tag)
	if !ok {
		return fmt.Errorf("unknown content type %q", tag)
	}
	request.Medium().ID = id

	connection, err := openConnection(ctx)
	if err != nil {
		return err
	}
	result, err := connection.Fetch(ctx, request)
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Not found.")
		return nil
	}

	medium := result.Medium()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:          %s\n", medium.ID)
	fmt.Fprintf(out, "Name:        %s\n", medium.Name)
	fmt.Fprintf(out, "Creator:     %s\n", medium.Creator)
	fmt.Fprintf(out, "Created:     %s\n", medium.CreationDate)
	fmt.Fprintf(out, "Access:      %s\n", medium.AccessMode)
	fmt.Fprintf(out, "Connects:    %s\n", medium.Connects)
	fmt.Fprintf(out, "Categories:  %s\n", medium.Categories)
	fmt.Fprintf(out, "Tags:        %s\n", medium.Tags)
	fmt.Fprintf(out, "Description: %s\n", medium.Description)
	return nil
}
