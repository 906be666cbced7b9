package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sbilibin2017/gw-tools-directory/internal/client"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/spf13/cobra"
)

var (
	apiToken string
	featured bool
)

// toolsCmd reads the catalog through the HTTP API
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Read the catalog through the API",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tools with stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		list := c.Tools
		if featured {
			list = c.FeaturedTools
		}

		tools, err := list(cmd.Context())
		if err != nil {
			return err
		}
		return printTools(cmd.OutOrStdout(), tools)
	},
}

var toolsGetCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Show one tool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, err := newClient().Tool(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printTools(cmd.OutOrStdout(), []models.ToolWithStats{*tool})
	},
}

var toolsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog totals (admin token required)",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newClient().AdminStats(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return json.NewEncoder(out).Encode(stats)
		}
		fmt.Fprintf(out, "Tools:          %d\n", stats.TotalTools)
		fmt.Fprintf(out, "Downloads:      %d\n", stats.TotalDownloads)
		fmt.Fprintf(out, "Reviews:        %d\n", stats.TotalReviews)
		fmt.Fprintf(out, "Average rating: %.2f\n", stats.AverageRating)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsListCmd, toolsGetCmd, toolsStatsCmd)

	toolsCmd.PersistentFlags().StringVar(&apiToken, "token", "", "Bearer token (defaults to TOOLSCTL_TOKEN)")
	toolsListCmd.Flags().BoolVar(&featured, "featured", false, "Only the newest tools")
}

func newClient() *client.Client {
	return client.New(apiURL, client.WithTokenSource(func(context.Context) (string, error) {
		if apiToken != "" {
			return apiToken, nil
		}
		if t := os.Getenv("TOOLSCTL_TOKEN"); t != "" {
			return t, nil
		}
		return "", fmt.Errorf("--token flag or TOOLSCTL_TOKEN is required")
	}))
}

func printTools(out io.Writer, tools []models.ToolWithStats) error {
	if jsonOutput {
		return json.NewEncoder(out).Encode(tools)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tDOWNLOADS\tRATING\tREVIEWS")
	for _, t := range tools {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%d\n", t.Slug, t.Title, t.DownloadCount, t.AverageRating, t.ReviewCount)
	}
	return w.Flush()
}
