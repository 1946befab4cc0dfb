package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hostwise/hostctl/pkg/inventory"
	"github.com/hostwise/hostctl/pkg/pipeline"
	"github.com/hostwise/hostctl/pkg/provider"
	"github.com/hostwise/hostctl/pkg/schema/hosting"
)

func newResolveCmd() *cobra.Command {
	var (
		configPath    string
		inventoryPath string
		phase         string
		output        string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a hosting configuration to its provider-native form",
		Long: `Resolve a hosting configuration against a backend inventory and print the
provider-native configuration that would be uploaded.

The inventory document carries the deploy operation's target and live backend
sets plus the project-wide live snapshot. Pass --phase plan to preview the
conservative planning-phase result (routes to not-yet-live services are
dropped) or --phase finalize for the upload-ready result.

Examples:
  hostctl resolve -c hosting.yaml -i inventory.yaml
  hostctl resolve -c hosting.json -i inventory.yaml --phase plan`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := hosting.NewLoader().Load(configPath)
			if err != nil {
				return formatValidationError(err)
			}

			var index *inventory.Index
			if inventoryPath != "" {
				index, err = inventory.Load(inventoryPath)
				if err != nil {
					return formatValidationError(err)
				}
			} else {
				// No inventory: resolution sees zero candidates everywhere.
				index = &inventory.Index{}
			}

			var resolved *provider.Config
			op := pipeline.NewOperation(cfg, index)
			switch phase {
			case "plan":
				resolved, err = op.Plan()
			case "finalize":
				if _, err = op.Plan(); err == nil {
					resolved, err = op.Finalize()
				}
			default:
				return fmt.Errorf("unknown phase %q (expected plan or finalize)", phase)
			}
			if err != nil {
				return err
			}

			return printConfig(cmd.OutOrStdout(), resolved, output)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config-file", "c", "hosting.yaml", "Path to the hosting configuration file")
	cmd.Flags().StringVarP(&inventoryPath, "inventory", "i", "", "Path to the backend inventory document")
	cmd.Flags().StringVar(&phase, "phase", "finalize", "Pipeline phase to resolve for (plan, finalize)")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json)")

	return cmd
}

func printConfig(w io.Writer, cfg *provider.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
