package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/cli/styles"
	"github.com/bnema/bridgehost/internal/infrastructure/config"
)

var (
	schemaJSON    bool
	schemaSection string
	schemaWrite   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration locations and schema",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and data locations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := GetApp()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out(cmd), "config:   %s\ndatabase: %s\nlogs:     %s\n",
			a.Manager.GetConfigFile(), a.Config.Database.Path, a.Config.Logging.LogDir)
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Describe every configuration key",
	Long: `Describe every configuration key with its type, default and allowed values.
With --write, config.schema.json is generated next to config.toml for editor
completion.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd)

	configSchemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "output as JSON")
	configSchemaCmd.Flags().StringVar(&schemaSection, "section", "", "only show one section (e.g. Permissions)")
	configSchemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "write config.schema.json next to the config file")
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}

	if schemaWrite {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out(cmd), path)
		return err
	}

	res, err := a.ConfigSchemaUC.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: schemaSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(a.Theme)
	if schemaJSON {
		s, err := renderer.RenderJSON(res.Keys)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out(cmd), s)
		return err
	}
	_, err = fmt.Fprintln(out(cmd), renderer.Render(res.Keys))
	return err
}
