package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newProgramCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Manage competition programs",
	}

	var assetType string
	upload := &cobra.Command{
		Use:   "upload <program-id> <file>",
		Short: "Attach a file (music, video, layout sheet) to a program",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("program-id", args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open upload: %w", err)
			}
			defer f.Close()

			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			asset, err := deps.Performance.UploadProgramAsset(cmd.Context(), sess.Token, id, assetType, filepath.Base(args[1]), f)
			if err != nil {
				return err
			}
			return a.print(asset)
		},
	}
	upload.Flags().StringVar(&assetType, "asset-type", "", "asset type, e.g. MUSIC or VIDEO (default OTHER)")

	cmd.AddCommand(upload)
	return cmd
}
