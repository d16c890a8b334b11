package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

const (
	reportExt = ".yaml"

	// loadConcurrency bounds parallel report file reads in LoadReports.
	loadConcurrency = 8
)

// ReportStore persists and retrieves analysis reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) (m.Path, error)
	LoadReports(path m.Path) ([]m.Report, error)
	Clean(path m.Path) error
}

// LocalReportStore stores each report as a YAML file in a local directory.
// Files are named by a content hash, so saving the same analysis twice
// overwrites instead of piling up duplicates.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore backed by the local filesystem.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// reportYAML is the on-disk shape of a saved report.
type reportYAML struct {
	ID        string         `yaml:"id"`
	CreatedAt time.Time      `yaml:"created_at"`
	Sequence  string         `yaml:"sequence"`
	Protein   string         `yaml:"protein"`
	Stats     statsYAML      `yaml:"stats"`
	Residues  map[string]int `yaml:"residues,omitempty"`
	Mutation  *mutationYAML  `yaml:"mutation,omitempty"`
}

type statsYAML struct {
	Length  int     `yaml:"length"`
	GCRatio float64 `yaml:"gc_ratio"`
	Entropy float64 `yaml:"entropy"`
}

// mutationYAML flattens the mutation, its outcome and the comparison into
// one block.
type mutationYAML struct {
	Type       string         `yaml:"type"`
	Position   int            `yaml:"position"`
	Base       string         `yaml:"base,omitempty"`
	Insert     string         `yaml:"insert,omitempty"`
	Length     int            `yaml:"length,omitempty"`
	Notation   string         `yaml:"notation,omitempty"`
	Sequence   string         `yaml:"sequence"`
	Protein    string         `yaml:"protein"`
	Changes    int            `yaml:"changes"`
	Similarity float64        `yaml:"similarity"`
	Silent     bool           `yaml:"silent"`
	Residues   map[string]int `yaml:"residues,omitempty"`
}

// SaveReport writes one report and returns the path of the written file.
// The report ID is derived from the analysis content hash.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.Report) (m.Path, error) {
	if path == "" {
		return "", errors.New("reports directory path is required")
	}

	if err := os.MkdirAll(string(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	report.ID = rs.computeReportHash(report.Analysis)

	data, err := yaml.Marshal(toReportYAML(report))
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	file := filepath.Join(string(path), report.ID+reportExt)
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return m.Path(file), nil
}

// LoadReports reads every report file in the directory, newest first.
// A missing directory yields an empty slice.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	if path == "" {
		return nil, errors.New("reports directory path is required")
	}

	entries, err := os.ReadDir(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return []m.Report{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read reports directory: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		names = append(names, entry.Name())
	}

	reports := make([]m.Report, len(names))

	var g errgroup.Group

	g.SetLimit(loadConcurrency)

	for i, name := range names {
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(string(path), name))
			if err != nil {
				return fmt.Errorf("failed to read report %s: %w", name, err)
			}

			var decoded reportYAML
			if err := yaml.Unmarshal(data, &decoded); err != nil {
				return fmt.Errorf("failed to decode report %s: %w", name, err)
			}

			report := fromReportYAML(decoded)
			if report.ID == "" {
				report.ID = strings.TrimSuffix(name, reportExt)
			}

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

// Clean removes every report file in the directory. A missing directory is
// not an error.
func (rs *LocalReportStore) Clean(path m.Path) error {
	if path == "" {
		return errors.New("reports directory path is required")
	}

	entries, err := os.ReadDir(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read reports directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		if err := os.Remove(filepath.Join(string(path), entry.Name())); err != nil {
			return fmt.Errorf("failed to remove report %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// computeReportHash derives a 16 hex character ID from the analysis
// content. Equal sequence, protein and mutation yield equal IDs.
func (rs *LocalReportStore) computeReportHash(analysis m.Analysis) string {
	h := sha256.New()
	h.Write([]byte(analysis.Sequence))
	h.Write([]byte{0})
	h.Write([]byte(analysis.Protein))

	if analysis.Outcome != nil {
		fmt.Fprintf(h, "\x00%s:%d:%d:%s:%d",
			analysis.Outcome.Mutation.Type,
			analysis.Outcome.Mutation.Position,
			analysis.Outcome.Mutation.Base,
			analysis.Outcome.Mutation.Insert,
			analysis.Outcome.Mutation.Length,
		)
	}

	return hex.EncodeToString(h.Sum(nil))[:16]
}

func toReportYAML(report m.Report) reportYAML {
	encoded := reportYAML{
		ID:        report.ID,
		CreatedAt: report.CreatedAt,
		Sequence:  string(report.Analysis.Sequence),
		Protein:   string(report.Analysis.Protein),
		Stats: statsYAML{
			Length:  report.Analysis.Stats.Length,
			GCRatio: report.Analysis.Stats.GCRatio,
			Entropy: report.Analysis.Stats.Entropy,
		},
		Residues: report.Analysis.Residues,
	}

	if outcome := report.Analysis.Outcome; outcome != nil {
		base := ""
		if outcome.Mutation.Base != 0 {
			base = string(rune(outcome.Mutation.Base))
		}

		encoded.Mutation = &mutationYAML{
			Type:       string(outcome.Mutation.Type),
			Position:   outcome.Mutation.Position,
			Base:       base,
			Insert:     string(outcome.Mutation.Insert),
			Length:     outcome.Mutation.Length,
			Notation:   outcome.Notation,
			Sequence:   string(outcome.Sequence),
			Protein:    string(outcome.Protein),
			Changes:    outcome.Comparison.Changes,
			Similarity: outcome.Comparison.Similarity,
			Silent:     outcome.Comparison.Silent,
			Residues:   outcome.Comparison.Residues,
		}
	}

	return encoded
}

func fromReportYAML(decoded reportYAML) m.Report {
	report := m.Report{
		ID:        decoded.ID,
		CreatedAt: decoded.CreatedAt,
		Analysis: m.Analysis{
			Sequence: m.Sequence(decoded.Sequence),
			Protein:  m.Protein(decoded.Protein),
			Stats: m.SequenceStats{
				Length:  decoded.Stats.Length,
				GCRatio: decoded.Stats.GCRatio,
				Entropy: decoded.Stats.Entropy,
			},
			Residues: decoded.Residues,
		},
	}

	if decoded.Mutation != nil {
		var base byte
		if decoded.Mutation.Base != "" {
			base = decoded.Mutation.Base[0]
		}

		report.Analysis.Outcome = &m.MutationOutcome{
			Mutation: m.Mutation{
				Type:     m.MutationType(decoded.Mutation.Type),
				Position: decoded.Mutation.Position,
				Base:     base,
				Insert:   m.Sequence(decoded.Mutation.Insert),
				Length:   decoded.Mutation.Length,
			},
			Notation: decoded.Mutation.Notation,
			Sequence: m.Sequence(decoded.Mutation.Sequence),
			Protein:  m.Protein(decoded.Mutation.Protein),
			Comparison: m.Comparison{
				Changes:    decoded.Mutation.Changes,
				Residues:   decoded.Mutation.Residues,
				Similarity: decoded.Mutation.Similarity,
				Silent:     decoded.Mutation.Silent,
			},
		}
	}

	return report
}
