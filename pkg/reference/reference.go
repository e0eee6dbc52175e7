// Package reference parses FHIR reference strings and matches them against
// the target types an element allows.
package reference

import (
	"regexp"
	"strings"
)

// Kind classifies a literal reference.
type Kind int

const (
	KindInvalid Kind = iota
	KindRelative
	KindAbsolute
	KindFragment
	KindURN
)

func (k Kind) String() string {
	switch k {
	case KindRelative:
		return "relative"
	case KindAbsolute:
		return "absolute"
	case KindFragment:
		return "fragment"
	case KindURN:
		return "urn"
	default:
		return "invalid"
	}
}

// Reference format patterns.
var (
	// Relative reference: ResourceType/id or ResourceType/id/_history/vid.
	relativeRefPattern = regexp.MustCompile(`^[A-Za-z]+/[A-Za-z0-9\-.]+(?:/_history/[A-Za-z0-9\-.]+)?$`)

	// Absolute URL reference (with optional _history/vid).
	absoluteRefPattern = regexp.MustCompile(`^https?://\S+/[A-Za-z]+/[A-Za-z0-9\-.]+(?:/_history/[A-Za-z0-9\-.]+)?$`)

	// Fragment reference (contained resource).
	fragmentRefPattern = regexp.MustCompile(`^#[A-Za-z0-9\-.]*$`)

	urnUUIDPattern = regexp.MustCompile(`^urn:uuid:.+$`)
	urnOIDPattern  = regexp.MustCompile(`^urn:oid:[012](\.[1-9]\d*)+$`)

	resourceTypePattern = regexp.MustCompile(`^[A-Z][A-Za-z]+$`)
)

// profileBase prefixes the core StructureDefinition of every FHIR type.
const profileBase = "http://hl7.org/fhir/StructureDefinition/"

// Classify returns the kind of a literal reference.
func Classify(ref string) Kind {
	switch {
	case relativeRefPattern.MatchString(ref):
		return KindRelative
	case absoluteRefPattern.MatchString(ref):
		return KindAbsolute
	case fragmentRefPattern.MatchString(ref):
		return KindFragment
	case urnUUIDPattern.MatchString(ref), urnOIDPattern.MatchString(ref):
		return KindURN
	default:
		return KindInvalid
	}
}

// IsValidFormat reports whether ref is a well-formed literal reference.
// The empty reference is allowed.
func IsValidFormat(ref string) bool {
	return ref == "" || Classify(ref) != KindInvalid
}

// ResourceType extracts the target resource type from a literal reference.
// Fragments and URNs carry no type and yield "".
func ResourceType(ref string) string {
	kind := Classify(ref)
	if kind != KindRelative && kind != KindAbsolute {
		return ""
	}

	// "Procedure/example/_history/1" -> "Procedure/example"
	ref, _, _ = strings.Cut(ref, "/_history/")

	parts := strings.Split(ref, "/")
	if len(parts) < 2 {
		return ""
	}
	candidate := parts[len(parts)-2]
	if !resourceTypePattern.MatchString(candidate) {
		return ""
	}
	return candidate
}

// TypeFromProfile extracts the type name from a StructureDefinition URL.
func TypeFromProfile(profileURL string) string {
	if name, ok := strings.CutPrefix(profileURL, profileBase); ok {
		return name
	}
	profileURL, _, _ = strings.Cut(profileURL, "|")
	if i := strings.LastIndex(profileURL, "/"); i >= 0 {
		return profileURL[i+1:]
	}
	return profileURL
}

// Profile returns the core StructureDefinition URL of typeName.
func Profile(typeName string) string {
	return profileBase + typeName
}

// TypeAllowed reports whether resourceType is one of targets. An empty
// target list and the Resource target allow every type.
func TypeAllowed(resourceType string, targets []string) bool {
	if len(targets) == 0 {
		return true
	}
	for _, target := range targets {
		if target == resourceType || target == "Resource" {
			return true
		}
	}
	return false
}
