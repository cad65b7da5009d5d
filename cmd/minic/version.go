package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"minic/internal/version"
)

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show minic build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(versionFormat)
		switch format {
		case "pretty", "json":
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
		if format == "json" {
			return renderJSON(cmd.OutOrStdout())
		}
		renderPretty(cmd.OutOrStdout())
		return nil
	},
}

func renderPretty(out io.Writer) {
	fmt.Fprintf(out, "minic %s\n", version.Version)
	if !versionShowFull {
		return
	}
	fmt.Fprintf(out, "commit: %s\n", orUnknown(version.GitCommit))
	fmt.Fprintf(out, "message: %s\n", orUnknown(version.GitMessage))
	fmt.Fprintf(out, "built: %s\n", orUnknown(version.BuildDate))
}

func renderJSON(out io.Writer) error {
	payload := map[string]string{"tool": "minic", "version": version.Version}
	if versionShowFull {
		payload["git_commit"] = orUnknown(version.GitCommit)
		payload["git_message"] = orUnknown(version.GitMessage)
		payload["build_date"] = orUnknown(version.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
