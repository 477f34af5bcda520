package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/shelf/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Resolve the Shelffile, update Shelffile.lock and optionally vendor cookbooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			manifest, _ := cmd.Flags().GetString("shelffile")
			only, _ := cmd.Flags().GetStringSlice("only")
			except, _ := cmd.Flags().GetStringSlice("except")

			result, err := c.app.Install(cmd.Context(), domain.InstallOptions{
				Path:     path,
				Manifest: manifest,
				Only:     only,
				Except:   except,
			})
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringP("path", "p", "", "Vendor the resolved cookbooks into this directory")
	cmd.Flags().StringP("shelffile", "b", "", "Path to the Shelffile (default: ./Shelffile)")
	cmd.Flags().StringSlice("only", nil, "Only vendor cookbooks in these groups")
	cmd.Flags().StringSlice("except", nil, "Vendor all cookbooks except those in these groups")
	return cmd
}

func printResult(w io.Writer, result *domain.InstallResult) {
	for _, src := range result.Plan.Sources {
		_, _ = fmt.Fprintf(w, "Using %s (%s)\n", src.Name, src.Version)
	}
	if result.VendorPath != "" {
		_, _ = fmt.Fprintf(w, "Vendored cookbooks to %s\n", result.VendorPath)
	}
}
