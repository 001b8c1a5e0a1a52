package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the server's content directory",
	Long: `Browse the server's content directory for a content type.

The type is one of Bot, Forum, Channel, Domain, Avatar, Script, or
Graphic. Results can be filtered by name, category, and tag, and
sorted by name, date, connects, and other criteria.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().String("type", "Bot", "Content type (Bot, Forum, Channel, Domain, Avatar, Script, Graphic)")
	browseCmd.Flags().String("filter", "", "Filter instances by name")
	browseCmd.Flags().String("category", "", "Filter instances by categories (csv)")
	browseCmd.Flags().String("tag", "", "Filter instances by tags (csv)")
	browseCmd.Flags().String("sort", "", "Sort criteria (name, date, connects, ...)")
	browseCmd.Flags().String("type-filter", "", "Access filter (Public, Private, Personal)")
}

// runBrowse executes the browse command
func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	connection, err := openConnection(ctx)
	if err != nil {
		return err
	}

	browse := &dto.BrowseConfig{}
	browse.Type, _ = cmd.Flags().GetString("type")
	browse.Filter, _ = cmd.Flags().GetString("filter")
	browse.Category, _ = cmd.Flags().GetString("category")
	browse.Tag, _ = cmd.Flags().GetString("tag")
	browse.Sort, _ = cmd.Flags().GetString("sort")
	browse.TypeFilter, _ = cmd.Flags().GetString("type-filter")

	instances, err := connection.Browse(ctx, browse)
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No results.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCREATOR\tCONNECTS\tDESCRIPTION")
	for _, instance := range instances {
		medium := instance.Medium()
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			medium.ID, medium.Name, medium.Creator, medium.Connects, medium.Description)
	}
	return writer.Flush()
}
