// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/curriculum-engine/internal/curriculumfile"
	"github.com/pdiddy/curriculum-engine/internal/pipeline"
	"github.com/pdiddy/curriculum-engine/internal/store"
	"github.com/pdiddy/curriculum-engine/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full pipeline over a topic file",
	Long: `Build reads raw topic records from a YAML or JSON topic file, runs the
complete pipeline (dedupe, cluster, prerequisite graph, cycle resolution,
sequencing, expansion, consistency audit), and writes the generated
curriculum to a file, the local store, or both.

The discipline defaults to the one declared in the topic file; built-in
configurations exist for Physics, Chemistry, Biology, and Mathematics.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	topicsPath, _ := cmd.Flags().GetString("topics")
	if topicsPath == "" {
		return fmt.Errorf("--topics is required")
	}

	tf, err := curriculumfile.ReadTopicFile(topicsPath)
	if err != nil {
		return err
	}

	discipline, _ := cmd.Flags().GetString("discipline")
	if discipline == "" {
		discipline = tf.Discipline
	}

	cfg := types.DefaultDisciplineConfig(discipline)
	if target, _ := cmd.Flags().GetInt("target"); target > 0 {
		cfg.Target = target
	} else if target := viper.GetInt("target"); target > 0 {
		cfg.Target = target
	}

	res, err := pipeline.Run(tf.Topics, cfg, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s: %d records -> %d concepts -> %d clusters -> %d subtopics (%d issues)\n",
		res.Discipline, res.RecordsIn, res.ConceptGroups, res.ClusterCount,
		res.Generated, res.IssueCount)

	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" {
		if err := curriculumfile.WriteCurriculum(outPath, res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote curriculum to %s\n", outPath)
	}

	if save, _ := cmd.Flags().GetBool("store"); save {
		s, err := store.NewStore(storeConfig(cmd))
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Save(context.Background(), res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved curriculum for %s to store\n", res.Discipline)
	}

	return nil
}

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("data_dir")
	}
	if dataDir == "" {
		dataDir = "data"
	}
	return types.StoreConfig{DataDir: dataDir}
}

func init() {
	buildCmd.Flags().String("topics", "", "topic file to read (YAML or JSON)")
	buildCmd.Flags().String("discipline", "", "discipline override (default: from topic file)")
	buildCmd.Flags().Int("target", 0, "target curriculum size (default: 1000)")
	buildCmd.Flags().String("out", "", "write the curriculum to this file (.json for JSON, else YAML)")
	buildCmd.Flags().Bool("store", false, "save the curriculum to the local store")
	buildCmd.Flags().String("data-dir", "", "store data directory (default: data)")

	rootCmd.AddCommand(buildCmd)
}
