package plotting

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerrlens/go-kerr-lensing/pkg/trace"
)

func testSweep(t *testing.T) []trace.Sample {
	t.Helper()
	samples, err := trace.Trace(trace.Request{
		ImpactMin:      4.0,
		ImpactMax:      7.0,
		Spin:           0,
		ObserverRadius: 25,
		Samples:        10,
	})
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}
	return samples
}

func TestWriteSweep(t *testing.T) {
	dir := t.TempDir()
	samples := testSweep(t)

	if err := WriteSweep(samples, dir); err != nil {
		t.Fatalf("WriteSweep failed: %v", err)
	}

	for _, name := range []string{"sweep.csv", "deflection.png", "traveltime.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("Expected %s to be non-empty", name)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.csv")
	samples := testSweep(t)

	if err := WriteCSV(samples, path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != len(samples)+1 {
		t.Fatalf("Expected header plus %d rows, got %d records", len(samples), len(records))
	}
	header := records[0]
	expected := []string{"impact", "deflection", "travel_time", "closest_approach", "hit"}
	for i, want := range expected {
		if header[i] != want {
			t.Errorf("Header column %d = %q, want %q", i, header[i], want)
		}
	}
	// Hit flag is encoded as 0/1
	for i, row := range records[1:] {
		if row[4] != "0" && row[4] != "1" {
			t.Errorf("Row %d hit flag = %q, want 0 or 1", i, row[4])
		}
	}
}
