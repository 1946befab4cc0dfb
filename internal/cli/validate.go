package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostwise/hostctl/pkg/errors"
	"github.com/hostwise/hostctl/pkg/schema/hosting"
)

func newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a hosting configuration",
		Long: `Validate a hosting configuration file without resolving it against an
inventory. Checks structural rules only: every rule carries exactly one match
pattern and every rewrite exactly one target.

Examples:
  hostctl validate
  hostctl validate ./site/hosting.yaml
  hostctl validate -f hosting.json`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "hosting.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if file != "" {
				path = file
			}

			if err := hosting.NewLoader().Validate(path); err != nil {
				return formatValidationError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Hosting configuration is valid!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to hosting.yaml if not in default location")

	return cmd
}

// formatValidationError extracts and displays validation error details
func formatValidationError(err error) error {
	var hostErr *errors.Error
	if e, ok := err.(*errors.Error); ok {
		hostErr = e
	} else {
		unwrapped := err
		for unwrapped != nil {
			if e, ok := unwrapped.(*errors.Error); ok {
				hostErr = e
				break
			}
			if u, ok := unwrapped.(interface{ Unwrap() error }); ok {
				unwrapped = u.Unwrap()
			} else {
				break
			}
		}
	}

	if hostErr != nil && hostErr.Code == errors.ErrCodeValidation {
		if errList, ok := hostErr.Details["errors"].([]string); ok && len(errList) > 0 {
			var sb strings.Builder
			sb.WriteString("validation failed\n")
			sb.WriteString("\nValidation errors:\n")
			for _, e := range errList {
				sb.WriteString(fmt.Sprintf("  - %s\n", e))
			}
			return fmt.Errorf("%s", sb.String())
		}
	}

	return err
}
