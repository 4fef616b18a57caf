// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package curriculumfile reads topic input files and reads and writes
// generated curricula on disk, in YAML or JSON by file extension.
package curriculumfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/curriculum-engine/internal/pipeline"
	"github.com/pdiddy/curriculum-engine/pkg/types"
)

// TopicFile is the on-disk representation of raw topic records for one
// discipline, typically harvested from open textbook tables of contents.
type TopicFile struct {
	Discipline string              `yaml:"discipline" json:"discipline"`
	Topics     []types.TopicRecord `yaml:"topics" json:"topics"`
}

// ReadTopicFile loads raw topic records from a YAML or JSON file.
func ReadTopicFile(path string) (*TopicFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading topic file: %w", err)
	}
	var tf TopicFile
	if err := unmarshal(path, data, &tf); err != nil {
		return nil, fmt.Errorf("parsing topic file %s: %w", path, err)
	}
	if tf.Discipline == "" {
		return nil, fmt.Errorf("topic file %s: missing discipline", path)
	}
	return &tf, nil
}

// WriteCurriculum saves a pipeline result to path. A .json extension selects
// JSON; everything else is written as YAML.
func WriteCurriculum(path string, res pipeline.Result) error {
	data, err := marshal(path, res)
	if err != nil {
		return fmt.Errorf("marshaling curriculum: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadCurriculum loads a previously written curriculum from disk.
func ReadCurriculum(path string) (*pipeline.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading curriculum file: %w", err)
	}
	var res pipeline.Result
	if err := unmarshal(path, data, &res); err != nil {
		return nil, fmt.Errorf("parsing curriculum file %s: %w", path, err)
	}
	return &res, nil
}

func marshal(path string, v any) ([]byte, error) {
	if isJSON(path) {
		return json.MarshalIndent(v, "", "  ")
	}
	return yaml.Marshal(v)
}

func unmarshal(path string, data []byte, v any) error {
	if isJSON(path) {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
