package adapter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

func makeReport(createdAt time.Time) m.Report {
	return m.Report{
		CreatedAt: createdAt,
		Analysis: m.Analysis{
			Sequence: "ATGCGTACGTACGTACGT",
			Protein:  "MRTYVR",
			Stats:    m.SequenceStats{Length: 18, GCRatio: 0.5, Entropy: 2},
			Residues: map[string]int{"M": 1, "R": 2, "T": 1, "Y": 1, "V": 1},
			Outcome: &m.MutationOutcome{
				Mutation: m.Mutation{Type: m.MutationPoint, Position: 0, Base: 'T'},
				Notation: "A1T",
				Sequence: "TTGCGTACGTACGTACGT",
				Protein:  "LRTYVR",
				Comparison: m.Comparison{
					Changes:    1,
					Residues:   map[string]int{"L": 1, "R": 2, "T": 1, "Y": 1, "V": 1},
					Similarity: float64(5) * 100 / 6,
					Silent:     false,
				},
			},
		},
	}
}

func TestLocalReportStore_SaveReport_WritesHashedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	report := makeReport(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	expectedHash := rs.computeReportHash(report.Analysis)
	if expectedHash == "" {
		t.Fatalf("expected non-empty report hash")
	}

	written, err := rs.SaveReport(m.Path(dir), report)
	if err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	expectedFile := filepath.Join(dir, expectedHash+".yaml")
	if string(written) != expectedFile {
		t.Fatalf("expected written path %s, got %s", expectedFile, written)
	}

	info, err := os.Stat(expectedFile)
	if err != nil {
		t.Fatalf("expected report file %s to exist: %v", expectedFile, err)
	}

	if !info.Mode().IsRegular() {
		t.Fatalf("expected %s to be a regular file", expectedFile)
	}

	matched, err := regexp.MatchString(`^[0-9a-f]{16}\.yaml$`, filepath.Base(expectedFile))
	if err != nil {
		t.Fatalf("regex error: %v", err)
	}

	if !matched {
		t.Fatalf("unexpected filename: %s", filepath.Base(expectedFile))
	}

	data, err := os.ReadFile(expectedFile)
	if err != nil {
		t.Fatalf("read report file: %v", err)
	}

	var decoded reportYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal YAML: %v", err)
	}

	if decoded.ID != expectedHash {
		t.Fatalf("expected id %s, got %s", expectedHash, decoded.ID)
	}

	if decoded.Sequence != "ATGCGTACGTACGTACGT" {
		t.Fatalf("unexpected sequence: %s", decoded.Sequence)
	}

	if decoded.Protein != "MRTYVR" {
		t.Fatalf("unexpected protein: %s", decoded.Protein)
	}

	if decoded.Mutation == nil {
		t.Fatalf("expected mutation block to be present")
	}

	if decoded.Mutation.Notation != "A1T" {
		t.Fatalf("unexpected notation: %s", decoded.Mutation.Notation)
	}

	if decoded.Mutation.Base != "T" {
		t.Fatalf("unexpected base: %q", decoded.Mutation.Base)
	}

	if decoded.Mutation.Changes != 1 {
		t.Fatalf("unexpected change count: %d", decoded.Mutation.Changes)
	}

	if decoded.Mutation.Silent {
		t.Fatalf("expected mutation not to be silent")
	}
}

func TestLocalReportStore_SaveReport_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	if _, err := rs.SaveReport("", makeReport(time.Now())); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLocalReportStore_SaveReport_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "reports")
	rs := &LocalReportStore{}

	if _, err := rs.SaveReport(m.Path(dir), makeReport(time.Now())); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("expected reports directory to be created: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 report file, found %d", len(entries))
	}
}

func TestLocalReportStore_SaveReport_SameAnalysisOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	if _, err := rs.SaveReport(m.Path(dir), makeReport(time.Now())); err != nil {
		t.Fatalf("first SaveReport returned error: %v", err)
	}

	if _, err := rs.SaveReport(m.Path(dir), makeReport(time.Now())); err != nil {
		t.Fatalf("second SaveReport returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected identical analyses to share one file, found %d", len(entries))
	}
}

func TestLocalReportStore_LoadReports_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	older := makeReport(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	newer := makeReport(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))
	newer.Analysis.Outcome.Mutation = m.Mutation{Type: m.MutationDeletion, Position: 0, Length: 3}
	newer.Analysis.Outcome.Notation = "1del3"
	newer.Analysis.Outcome.Sequence = "CGTACGTACGTACGT"
	newer.Analysis.Outcome.Protein = "RTYVR"

	if _, err := rs.SaveReport(m.Path(dir), older); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	if _, err := rs.SaveReport(m.Path(dir), newer); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	reports, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	if !reports[0].CreatedAt.After(reports[1].CreatedAt) {
		t.Fatalf("expected newest report first, got %v then %v", reports[0].CreatedAt, reports[1].CreatedAt)
	}

	got := reports[0]
	if got.Analysis.Outcome == nil {
		t.Fatalf("expected outcome to survive the round trip")
	}

	if got.Analysis.Outcome.Mutation.Type != m.MutationDeletion {
		t.Fatalf("unexpected mutation type: %s", got.Analysis.Outcome.Mutation.Type)
	}

	if got.Analysis.Outcome.Protein != "RTYVR" {
		t.Fatalf("unexpected mutated protein: %s", got.Analysis.Outcome.Protein)
	}

	if got.ID == "" {
		t.Fatalf("expected report ID to be set")
	}

	if got.Analysis.Residues["R"] != 2 {
		t.Fatalf("unexpected residues: %v", got.Analysis.Residues)
	}
}

func TestLocalReportStore_LoadReports_MissingDir_ReturnsEmpty(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "does-not-exist")
	rs := &LocalReportStore{}

	reports, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}

	if len(reports) != 0 {
		t.Fatalf("expected no reports, got %d", len(reports))
	}
}

func TestLocalReportStore_LoadReports_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	if _, err := rs.LoadReports(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLocalReportStore_LoadReports_SkipsForeignFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	if _, err := rs.SaveReport(m.Path(dir), makeReport(time.Now())); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reports, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}

	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
}

func TestLocalReportStore_LoadReports_CorruptFile_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{invalid"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := rs.LoadReports(m.Path(dir)); err == nil {
		t.Fatalf("expected error for corrupt report file")
	}
}

func TestLocalReportStore_Clean_RemovesReports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	report := makeReport(time.Now())
	if _, err := rs.SaveReport(m.Path(dir), report); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	other := makeReport(time.Now())
	other.Analysis.Sequence = "ATGC"
	other.Analysis.Protein = "M"

	if _, err := rs.SaveReport(m.Path(dir), other); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	if err := rs.Clean(m.Path(dir)); err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}

	if len(entries) != 0 {
		t.Fatalf("expected all report files removed, found %d", len(entries))
	}
}

func TestLocalReportStore_Clean_MissingDir_NoError(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "does-not-exist")
	rs := &LocalReportStore{}

	if err := rs.Clean(m.Path(dir)); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestLocalReportStore_Clean_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	if err := rs.Clean(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLocalReportStore_ComputeReportHash_Stable(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	first := makeReport(time.Now())
	second := makeReport(time.Now().Add(time.Hour))

	hashA := rs.computeReportHash(first.Analysis)
	hashB := rs.computeReportHash(second.Analysis)

	if hashA != hashB {
		t.Fatalf("expected timestamps not to affect the hash: %s != %s", hashA, hashB)
	}

	if len(hashA) != 16 {
		t.Fatalf("expected 16 character hash, got %d", len(hashA))
	}

	second.Analysis.Outcome.Mutation.Position = 3

	if rs.computeReportHash(second.Analysis) == hashA {
		t.Fatalf("expected a different mutation to change the hash")
	}
}
