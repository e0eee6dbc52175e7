package primitive

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		typeName string
		value    string
		wantErr  bool
	}{
		{TypeString, "hello", false},
		{TypeString, "", true},
		{TypeMarkdown, "# title", false},
		{TypeCode, "accepted", false},
		{TypeCode, "needs-action", false},
		{TypeCode, " leading", true},
		{TypeCode, "two  spaces", true},
		{TypeID, "abc-123.x", false},
		{TypeID, "has space", true},
		{TypeID, "under_score", true},
		{TypeURI, "http://example.org/fhir", false},
		{TypeURI, "urn:oid:1.2.3", false},
		{TypeURI, "has space", true},
		{TypeURL, "https://example.org/cite", false},
		{TypeURL, "not a url", true},
		{TypeCanonical, "http://example.org/sd|1.0", false},
		{TypeCanonical, "http://example.org/sd version", true},
		{TypeUUID, "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", false},
		{TypeUUID, "c757873d-ec9a-4326-a141-556f43239520", true},
		{TypeUUID, "urn:uuid:nope", true},
		{TypeOID, "urn:oid:2.16.840.1", false},
		{TypeOID, "urn:oid:3.1", true},
		{TypeDecimal, "1.50", false},
		{TypeDecimal, "-0.5e10", false},
		{TypeDecimal, "01.5", true},
		{TypeBase64Binary, "aGVsbG8=", false},
		{TypeBase64Binary, "!!!", true},
		{TypeDate, "2024", false},
		{TypeDate, "2024-02", false},
		{TypeDate, "2024-02-29", false},
		{TypeDate, "2024-13-01", true},
		{TypeDate, "2024-02-29T10:00:00Z", true},
		{TypeDateTime, "2024-02-29T10:00:00Z", false},
		{TypeDateTime, "2024-02-29T10:00:00.123+05:30", false},
		{TypeDateTime, "2024-02-29", false},
		{TypeDateTime, "2024-02-29T25:00:00Z", true},
		{TypeInstant, "2024-02-29T10:00:00Z", false},
		{TypeInstant, "2024-02-29T10:00:00", true},
		{TypeInstant, "2024-02-29", true},
		{TypeTime, "23:59:59", false},
		{TypeTime, "24:00:00", true},
		{TypeXHTML, `<div xmlns="http://www.w3.org/1999/xhtml">text</div>`, false},
		{TypeXHTML, "<p>text</p>", true},
		{"unknownType", "anything goes", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeName+"/"+tt.value, func(t *testing.T) {
			err := Check(tt.typeName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check(%q, %q) error = %v, wantErr %v", tt.typeName, tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not match ErrInvalid", err)
			}
		})
	}
}

func TestCheckInteger(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		value    int64
		wantErr  bool
	}{
		{"positive ok", TypePositiveInt, 1, false},
		{"positive zero", TypePositiveInt, 0, true},
		{"unsigned zero", TypeUnsignedInt, 0, false},
		{"unsigned negative", TypeUnsignedInt, -1, true},
		{"integer max", TypeInteger, 2147483647, false},
		{"integer overflow", TypeInteger, 2147483648, true},
		{"integer64 wide", TypeInteger64, 1 << 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckInteger(tt.typeName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckInteger(%s, %d) error = %v, wantErr %v", tt.typeName, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestFormatErrorMessage(t *testing.T) {
	err := Check(TypeID, "bad id")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if fe.Type != TypeID || fe.Value != "bad id" {
		t.Errorf("unexpected error fields: %+v", fe)
	}
}

func TestIsPrimitive(t *testing.T) {
	if !IsPrimitive(TypeDateTime) {
		t.Error("dateTime should be primitive")
	}
	if IsPrimitive("Coding") {
		t.Error("Coding should not be primitive")
	}
}
