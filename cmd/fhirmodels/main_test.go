package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"types", []string{"types", "--kind", "resource"}, []string{"AppointmentResponse", "Citation"}},
		{"describe text", []string{"describe", "AppointmentResponse"}, []string{"AppointmentResponse (resource)", "participantStatus", "apr-1"}},
		{"describe choice", []string{"describe", "Citation"}, []string{"versionAlgorithm[x]", "cnl-0"}},
		{"describe json", []string{"describe", "Coding", "-o", "json"}, []string{`"name": "Coding"`, `"kind": "complex-type"`}},
		{"structuredefinition", []string{"sd", "AppointmentResponse"}, []string{"http://hl7.org/fhir/StructureDefinition/AppointmentResponse", "apr-1"}},
		{"structuredefinition yaml", []string{"structuredefinition", "Citation", "-o", "yaml"}, []string{"type: Citation"}},
		{"example json", []string{"example", "citation"}, []string{`"resourceType": "Citation"`, `"name": "ExampleCitation"`}},
		{"example yaml", []string{"example", "AppointmentResponse", "-o", "yaml"}, []string{"resourceType: AppointmentResponse\n", "participantStatus: accepted"}},
		{"validate", []string{"example", "appointmentresponse", "--validate"}, []string{"== AppointmentResponse ==", "Status: VALID"}},
		{"validate all", []string{"example", "all", "--validate", "--workers", "2"}, []string{"== AppointmentResponse ==", "== Citation ==", "Status: VALID"}},
		{"all yaml", []string{"example", "all", "-o", "yaml"}, []string{"resourceType: AppointmentResponse\n", "---\nresourceType: Citation\n"}},
		{"version", []string{"version"}, []string{"FHIR 5.0.0", "hl7.fhir.r5.core#5.0.0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown type", []string{"describe", "Nope"}},
		{"unknown example", []string{"example", "patient"}},
		{"bad output", []string{"version", "-o", "xml"}},
		{"bad log level", []string{"version", "--log-level", "loud"}},
		{"bad workers", []string{"version", "--workers=-1"}},
		{"missing config", []string{"version", "--config", "/nonexistent/fhirmodels.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("Execute() error = nil, want error")
			}
		})
	}
}

func TestValidateJSONOutput(t *testing.T) {
	out, err := run(t, "example", "citation", "--validate", "-o", "json", "--skip", "cnl-0")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var got struct {
		Issues []json.RawMessage `json:"issues"`
		Stats  struct {
			ResourceType string `json:"resourceType"`
		} `json:"stats"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	if len(got.Issues) != 0 {
		t.Errorf("issues = %d, want 0", len(got.Issues))
	}
	if got.Stats.ResourceType != "Citation" {
		t.Errorf("stats.resourceType = %q, want Citation", got.Stats.ResourceType)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fhirmodels.yaml")
	if err := os.WriteFile(path, []byte("output: json\nlog-level: error\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "version", "--config", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, `"fhirVersion": "5.0.0"`) {
		t.Errorf("config file output not applied:\n%s", out)
	}
}
