package catalog

import (
	"strings"
	"testing"
)

func TestParseRow_Valid(t *testing.T) {
	rec, err := ParseRow([]string{"Sol", "1.0", "0", "0", "0", "10"})
	if err != nil {
		t.Fatalf("ParseRow returned error: %v", err)
	}

	if rec.Name != "Sol" {
		t.Errorf("Name = %q, want Sol", rec.Name)
	}
	if rec.Radius != 1.0 || rec.RA != 0 || rec.Dec != 0 || rec.Magnitude != 0 || rec.Size != 10 {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestParseRow_MagnitudeBoundaries(t *testing.T) {
	tests := []struct {
		mag  string
		want bool // true = accepted
	}{
		{"-4", true},  // lower bound inclusive
		{"4", true},   // upper bound inclusive
		{"-5", false}, // below range
		{"5", false},  // above range
		{"4.0001", false},
		{"-3.999", true},
		{"0", true},
	}

	for _, tt := range tests {
		_, err := ParseRow([]string{"Star", "1", "10", "20", tt.mag, "5"})
		got := err == nil
		if got != tt.want {
			t.Errorf("magnitude %s: accepted = %v, want %v (err: %v)", tt.mag, got, tt.want, err)
		}
	}
}

func TestParseRow_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{"too few fields", []string{"Star", "1", "10", "20", "0"}},
		{"too many fields", []string{"Star", "1", "10", "20", "0", "5", "extra"}},
		{"empty", nil},
		{"non-numeric radius", []string{"Star", "one", "10", "20", "0", "5"}},
		{"non-numeric ra", []string{"Star", "1", "x", "20", "0", "5"}},
		{"non-numeric dec", []string{"Star", "1", "10", "?", "0", "5"}},
		{"non-numeric magnitude", []string{"Star", "1", "10", "20", "bright", "5"}},
		{"non-numeric size", []string{"Star", "1", "10", "20", "0", "big"}},
		{"blank name", []string{"  ", "1", "10", "20", "0", "5"}},
	}

	for _, tt := range tests {
		if _, err := ParseRow(tt.fields); err == nil {
			t.Errorf("%s: ParseRow accepted %v", tt.name, tt.fields)
		}
	}
}

func TestLoad_FiltersPerRecord(t *testing.T) {
	input := strings.Join([]string{
		"Sol,1.0,0,0,0,10",
		"BadMag,1,10,20,5,5",      // magnitude out of range
		"Short,1,10,20,0",         // five fields
		"Vega,7.7,279.235,38.784,0.03,10",
		"NotNum,1,10,20,zero,5",   // non-numeric magnitude
		"DimEdge,2,30,40,-4,3",    // boundary magnitude, kept
	}, "\n")

	records, stats := Load(strings.NewReader(input))

	if stats.Total != 6 {
		t.Errorf("Total = %d, want 6", stats.Total)
	}
	if stats.Loaded != 3 || len(records) != 3 {
		t.Fatalf("Loaded = %d (len %d), want 3", stats.Loaded, len(records))
	}
	if stats.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", stats.Skipped)
	}

	names := []string{records[0].Name, records[1].Name, records[2].Name}
	want := []string{"Sol", "Vega", "DimEdge"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("records[%d].Name = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLoad_EmptyInput(t *testing.T) {
	records, stats := Load(strings.NewReader(""))
	if len(records) != 0 || stats.Total != 0 {
		t.Errorf("empty input produced %d records, stats %+v", len(records), stats)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := LoadFile("testdata/does-not-exist.csv")
	if err == nil {
		t.Fatal("LoadFile on missing path returned nil error")
	}
	if !strings.Contains(err.Error(), "catalog source unavailable") {
		t.Errorf("error = %v, want wrapped ErrMissingSource", err)
	}
}

func TestDefault_AllValid(t *testing.T) {
	records := Default()
	if len(records) == 0 {
		t.Fatal("default catalog is empty")
	}

	for _, rec := range records {
		if rec.Magnitude < MagnitudeMin || rec.Magnitude > MagnitudeMax {
			t.Errorf("%s: magnitude %v outside valid range", rec.Name, rec.Magnitude)
		}
		if rec.Name == "" || rec.Radius <= 0 || rec.Size <= 0 {
			t.Errorf("%s: degenerate record %+v", rec.Name, rec)
		}
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a[0].Name = "mutated"
	b := Default()
	if b[0].Name == "mutated" {
		t.Error("Default() exposes shared backing array")
	}
}
