package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/fortunes/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the fortunes config file",
	Long:  `Commands for managing the fortunes config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		configPath := configFilePath(cmd)

		if _, err := config.Init(appFs, configPath); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		configPath := configFilePath(cmd)

		cfg, err := config.LoadConfig(appFs, configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", configPath)
		return toml.NewEncoder(out).Encode(cfg)
	},
}

// configSetInputCmd represents the config set-input command
var configSetInputCmd = &cobra.Command{
	Use:   "set-input [path]",
	Short: "Set the default tarot interpretations file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		if err := config.SetInput(appFs, configFilePath(cmd), input); err != nil {
			return fmt.Errorf("error setting default input: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default input set to: %s\n", input)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetInputCmd)
}
