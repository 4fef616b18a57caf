// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/curriculum-engine/internal/consistency"
	"github.com/pdiddy/curriculum-engine/internal/curriculumfile"
	"github.com/pdiddy/curriculum-engine/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [curriculum file]",
	Short: "Audit a generated curriculum for ordering violations",
	Long: `Check re-runs the consistency audit over a previously written curriculum
file: prerequisites must resolve and point backwards, and along every
prerequisite edge mathematical complexity and historical era must not
exceed the dependent's. The audit is read-only and exits non-zero when
issues are found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	res, err := curriculumfile.ReadCurriculum(args[0])
	if err != nil {
		return err
	}

	cfg := types.DefaultDisciplineConfig(res.Discipline)
	issues := consistency.Check(res.Subtopics, cfg)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(issues); err != nil {
			return err
		}
	} else if len(issues) == 0 {
		fmt.Fprintf(os.Stdout, "%s: %d subtopics, no issues\n", res.Discipline, len(res.Subtopics))
	} else {
		fmt.Fprintf(os.Stdout, "%-22s  %-16s  %s\n", "Kind", "Subtopic", "Description")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
		for _, issue := range issues {
			fmt.Fprintf(os.Stdout, "%-22s  %-16s  %s\n", issue.Kind, issue.SubtopicID, issue.Description)
		}
		fmt.Fprintf(os.Stdout, "\n%d issue(s)\n", len(issues))
	}

	if len(issues) > 0 {
		return fmt.Errorf("%d consistency issue(s) found", len(issues))
	}
	return nil
}

func init() {
	checkCmd.Flags().Bool("json", false, "output issues as JSON")

	rootCmd.AddCommand(checkCmd)
}
