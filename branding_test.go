package billdoc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	if p.CompanyName == "" || p.FilePrefix == "" || p.BLNumberFormat == "" {
		t.Fatal("default profile has empty identity fields")
	}
	if len(p.ChargeLines) == 0 || len(p.FinePrint) == 0 || len(p.HeaderTerms) == 0 {
		t.Fatal("default profile has empty terms content")
	}
}

func TestLoadProfileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := "companyName: OTHER LINES LLC\nfilePrefix: OTH_1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if p.CompanyName != "OTHER LINES LLC" {
		t.Errorf("company name = %q, want overlay value", p.CompanyName)
	}
	if p.FilePrefix != "OTH_1" {
		t.Errorf("file prefix = %q, want overlay value", p.FilePrefix)
	}
	// Untouched fields keep their defaults.
	if len(p.ChargeLines) == 0 || p.EquipmentPhrase == "" {
		t.Error("overlay wiped defaulted fields")
	}
}

func TestLoadProfileEmptyPathReturnsDefaults(t *testing.T) {
	p, err := LoadProfile("")
	if err != nil {
		t.Fatalf("LoadProfile(\"\") failed: %v", err)
	}
	if p.CompanyName != DefaultProfile().CompanyName {
		t.Error("empty path did not return defaults")
	}
}

func TestBLNumberFor(t *testing.T) {
	p := DefaultProfile()
	if got := p.BLNumberFor("HBL-1", "EXPL-1", 5); got != "HBL-1" {
		t.Errorf("house BL should win, got %q", got)
	}
	if got := p.BLNumberFor("", "EXPL-1", 5); got != "EXPL-1" {
		t.Errorf("explicit number should win over pattern, got %q", got)
	}
	if got := p.BLNumberFor("", "", 5); got != "BL RST/NSADMN/25/00005" {
		t.Errorf("generated number = %q", got)
	}
}
