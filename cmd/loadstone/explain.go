// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"sort"

	"loadstone/internal/issue"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [code]",
	Short: "Show remediation docs for a diagnostic code",
	Long: `Show remediation docs for a diagnostic code.

Scan diagnostics and validation findings carry short codes such as
'plugin_fault' or 'invalid_guid'. This command renders the full
explanation for a code, or lists all known codes when run without
arguments.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listIssueCodes(cmd)
		}
		return explainIssue(cmd, issue.Code(args[0]))
	},
}

func listIssueCodes(cmd *cobra.Command) error {
	vals := issue.Values()
	sort.Slice(vals, func(i, j int) bool { return vals[i].Code() < vals[j].Code() })

	fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("Diagnostic codes"))
	for _, iss := range vals {
		fmt.Fprintln(cmd.OutOrStdout(), "  "+EntryStyle.Render(string(iss.Code())))
	}
	return nil
}

func explainIssue(cmd *cobra.Command, code issue.Code) error {
	iss := issue.Get(code)
	if iss == nil {
		return fmt.Errorf("unknown diagnostic code %q; run 'loadstone explain' for the list", code)
	}

	out, err := iss.Render("auto")
	if err != nil {
		return fmt.Errorf("failed to render docs for %q: %w", code, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
