package reference

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want Kind
	}{
		{"relative", "Patient/123", KindRelative},
		{"relative with history", "Patient/123/_history/2", KindRelative},
		{"absolute", "http://example.org/fhir/Patient/123", KindAbsolute},
		{"absolute https with history", "https://example.org/fhir/Organization/o1/_history/1", KindAbsolute},
		{"fragment", "#contained-1", KindFragment},
		{"urn uuid", "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", KindURN},
		{"urn oid", "urn:oid:1.2.840", KindURN},
		{"whitespace", "Patient 123", KindInvalid},
		{"missing id", "Patient/", KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ref); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestIsValidFormat(t *testing.T) {
	if !IsValidFormat("") {
		t.Error("empty reference should be allowed")
	}
	if IsValidFormat("not a reference") {
		t.Error("free text should be rejected")
	}
}

func TestResourceType(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"Patient/123", "Patient"},
		{"Practitioner/p1/_history/3", "Practitioner"},
		{"http://example.org/fhir/Organization/org-1", "Organization"},
		{"https://example.org/fhir/Citation/c1/_history/1", "Citation"},
		{"#local", ""},
		{"urn:uuid:c757873d-ec9a-4326-a141-556f43239520", ""},
		{"patient/123", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := ResourceType(tt.ref); got != tt.want {
				t.Errorf("ResourceType(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestTypeFromProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  string
		expected string
	}{
		{"standard Patient profile", "http://hl7.org/fhir/StructureDefinition/Patient", "Patient"},
		{"standard Resource profile", "http://hl7.org/fhir/StructureDefinition/Resource", "Resource"},
		{"custom profile URL", "http://example.org/fhir/StructureDefinition/MyPatient", "MyPatient"},
		{"versioned canonical", "http://example.org/fhir/StructureDefinition/MyOrg|1.0", "MyOrg"},
		{"bare name", "Group", "Group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeFromProfile(tt.profile); got != tt.expected {
				t.Errorf("TypeFromProfile(%q) = %q, want %q", tt.profile, got, tt.expected)
			}
		})
	}

	if got := TypeFromProfile(Profile("Location")); got != "Location" {
		t.Errorf("Profile round trip = %q", got)
	}
}

func TestTypeAllowed(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		targets []string
		want    bool
	}{
		{"listed", "Patient", []string{"Patient", "Group"}, true},
		{"not listed", "Organization", []string{"Patient", "Group"}, false},
		{"any resource", "Organization", []string{"Resource"}, true},
		{"no targets", "Organization", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeAllowed(tt.typ, tt.targets); got != tt.want {
				t.Errorf("TypeAllowed(%q, %v) = %v, want %v", tt.typ, tt.targets, got, tt.want)
			}
		})
	}
}
