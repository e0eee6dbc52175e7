package fhirmodels

import (
	"testing"
)

func TestFHIRVersion_IsValid(t *testing.T) {
	tests := []struct {
		version FHIRVersion
		want    bool
	}{
		{R5, true},
		{"R4", false},
		{"invalid", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.version.IsValid(); got != tt.want {
			t.Errorf("%v.IsValid() = %v; want %v", tt.version, got, tt.want)
		}
	}
}

func TestFHIRVersion_Info(t *testing.T) {
	info, ok := R5.Info()
	if !ok {
		t.Fatal("R5.Info() not found")
	}
	if info.FHIRVersion != "5.0.0" || info.CorePackage != "hl7.fhir.r5.core#5.0.0" || info.Module != Version {
		t.Errorf("R5.Info() = %+v", info)
	}
	if R5.String() != "R5" {
		t.Errorf("R5.String() = %q", R5.String())
	}

	if _, ok := FHIRVersion("R3").Info(); ok {
		t.Error("R3 should not be supported")
	}
}
