// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/curriculum-engine/pkg/types"
)

// ExportDocument is the on-disk shape of an exported curriculum.
type ExportDocument struct {
	Discipline string                 `json:"discipline" yaml:"discipline"`
	Count      int                    `json:"count" yaml:"count"`
	Subtopics  []types.SubtopicRecord `json:"subtopics" yaml:"subtopics"`
}

// ExportYAML writes a stored curriculum to a YAML file at path.
func (s *Store) ExportYAML(ctx context.Context, discipline, path string) error {
	doc, err := s.exportDocument(ctx, discipline)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes a stored curriculum to a JSON file at path.
func (s *Store) ExportJSON(ctx context.Context, discipline, path string) error {
	doc, err := s.exportDocument(ctx, discipline)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportDocument(ctx context.Context, discipline string) (*ExportDocument, error) {
	subs, err := s.Load(ctx, discipline)
	if err != nil {
		return nil, fmt.Errorf("loading curriculum for export: %w", err)
	}
	return &ExportDocument{
		Discipline: discipline,
		Count:      len(subs),
		Subtopics:  subs,
	}, nil
}
