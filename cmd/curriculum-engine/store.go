// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/curriculum-engine/internal/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage stored curricula (list, export)",
	Long: `Store manages the local SQLite database of generated curricula. Use
subcommands to list stored runs or export one to YAML or JSON.`,
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored curricula",
	RunE:  runStoreList,
}

func runStoreList(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	summaries, err := s.List(context.Background())
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No stored curricula.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %8s  %10s  %7s\n",
		"Discipline", "Generated", "Target", "Subtopics", "Issues")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 68))
	for _, sum := range summaries {
		fmt.Fprintf(os.Stdout, "%-14s  %-20s  %8d  %10d  %7d\n",
			sum.Discipline, sum.GeneratedAt.Format("2006-01-02 15:04:05"),
			sum.Target, sum.Generated, sum.IssueCount)
	}
	return nil
}

var storeExportCmd = &cobra.Command{
	Use:   "export [discipline]",
	Short: "Export a stored curriculum to YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	discipline := args[0]
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	switch format {
	case "yaml", "":
		if outPath == "" {
			outPath = strings.ToLower(discipline) + "-curriculum.yaml"
		}
		if err := s.ExportYAML(context.Background(), discipline, outPath); err != nil {
			return err
		}
	case "json":
		if outPath == "" {
			outPath = strings.ToLower(discipline) + "-curriculum.json"
		}
		if err := s.ExportJSON(context.Background(), discipline, outPath); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Fprintf(os.Stdout, "Exported %s to %s\n", discipline, outPath)
	return nil
}

func init() {
	storeCmd.PersistentFlags().String("data-dir", "", "store data directory (default: data)")

	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	storeExportCmd.Flags().String("out", "", "output file (default: <discipline>-curriculum.<ext>)")

	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
