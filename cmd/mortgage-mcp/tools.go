package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/mortgage-mcp/internal/mcp"
)

func newToolsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog advertised over MCP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := renderCatalog(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}

func renderCatalog(format string) ([]byte, error) {
	catalog := mcp.Catalog()
	switch format {
	case "yaml":
		out, err := yaml.Marshal(catalog)
		if err != nil {
			return nil, fmt.Errorf("encode catalog: %w", err)
		}
		return out, nil
	case "json":
		out, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode catalog: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}
