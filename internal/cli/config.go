package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alphapapa/graph.el/pkg/config"
)

// configCommand creates the config command for inspecting settings.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if asTOML {
				return config.Write(cfg, cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), configTable(cfg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "print as TOML suitable for a config file")

	return cmd
}

// configTable renders cfg as a two-column table.
func configTable(cfg config.Config) string {
	l := cfg.Layout
	cacheDir := cfg.Cache.Dir
	if cacheDir == "" {
		cacheDir = "(default)"
	}
	rows := [][]string{
		{"layout.wrap_threshold", strconv.Itoa(l.WrapThreshold)},
		{"layout.node_padding", strconv.Itoa(l.NodePadding)},
		{"layout.row_padding", strconv.Itoa(l.RowPadding)},
		{"layout.line_width", strconv.Itoa(l.LineWidth)},
		{"layout.line_padding", strconv.Itoa(l.LinePadding)},
		{"layout.arrows", strconv.FormatBool(l.Arrows)},
		{"cache.disabled", strconv.FormatBool(cfg.Cache.Disabled)},
		{"cache.dir", cacheDir},
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleValue
			}
			return StyleDim
		})
	return t.Render()
}
