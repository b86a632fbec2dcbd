package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pathCommand creates the "path" command.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		configPath string
		from, to   int
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print a fewest-edge path between two nodes of a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			g, err := cfg.Graph.Build()
			if err != nil {
				return fmt.Errorf("build graph: %w", err)
			}
			start, err := g.Node(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := g.Node(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			c.Logger.Debug("graph loaded", "nodes", g.Len(), "edges", g.EdgeCount())
			path, err := g.FindPath(start, end)
			if err != nil {
				return fmt.Errorf("path: %w", err)
			}
			c.Logger.Info("Path found", "length", len(path)-1)

			return writeNodes(cmd.OutOrStdout(), path)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with a [graph] table")
	cmd.Flags().IntVar(&from, "from", 0, "start node index")
	cmd.Flags().IntVar(&to, "to", 0, "end node index")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// componentsCommand creates the "components" command.
func (c *CLI) componentsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Print the connected components of a graph, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			g, err := cfg.Graph.Build()
			if err != nil {
				return fmt.Errorf("build graph: %w", err)
			}

			comps := g.ConnectedComponents()
			c.Logger.Info("Components found", "count", len(comps), "nodes", g.Len())
			for _, comp := range comps {
				if err := writeNodes(cmd.OutOrStdout(), comp); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with a [graph] table")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
