// Package cli implements the hostctl CLI commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hostctl",
	Short: "Resolve hosting configuration for deploys",
	Long: `hostctl translates a user-authored hosting configuration (rewrites,
redirects, headers, URL-shape options) into the schema the hosting provider's
API accepts, resolving symbolic function and service references against the
backends of the current deploy operation.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hostctl/config.yaml)")

	viper.SetEnvPrefix("HOSTCTL")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.hostctl")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// Read config file if it exists
	_ = viper.ReadInConfig()
}
