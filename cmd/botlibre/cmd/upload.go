package cmd

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file attachment to a forum",
	Long: `Upload a file attachment to a forum and print the hosted link.

Files over 2MB are rejected unless --resize is set; --resize downscales
an image to fit 300x300 before uploading.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().String("forum", "", "Forum id to attach the file to")
	uploadCmd.Flags().Bool("resize", false, "Downscale the image before uploading")
}

// runUpload executes the upload command
func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	forum, _ := cmd.Flags().GetString("forum")
	if forum == "" {
		return errors.New("the --forum flag is required")
	}
	resizeImage, _ := cmd.Flags().GetBool("resize")

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	filename := filepath.Base(path)
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}

	connection, err := openConnection(ctx)
	if err != nil {
		return err
	}
	link, err := connection.UploadForumFile(ctx, forum, filename, mimeType, content, resizeImage)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), link)
	return nil
}
