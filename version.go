package fhirmodels

// FHIRVersion represents a FHIR specification version.
type FHIRVersion string

// R5 is FHIR Release 5 (5.0.0), the only release modelled here.
const R5 FHIRVersion = "R5"

// Version is the module release.
const Version = "0.1.0"

// String returns the version string.
func (v FHIRVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a supported FHIR version.
func (v FHIRVersion) IsValid() bool {
	_, ok := versionConfigs[v]
	return ok
}

// versionConfig holds version-specific configuration.
type versionConfig struct {
	// CorePackage is the FHIR core package the metadata tables follow.
	CorePackageName    string
	CorePackageVersion string

	// FHIRVersionString is the version written into StructureDefinitions.
	FHIRVersionString string
}

var versionConfigs = map[FHIRVersion]versionConfig{
	R5: {
		CorePackageName:    "hl7.fhir.r5.core",
		CorePackageVersion: "5.0.0",
		FHIRVersionString:  "5.0.0",
	},
}

// VersionInfo describes a supported FHIR release.
type VersionInfo struct {
	Release     string `json:"release" yaml:"release"`
	FHIRVersion string `json:"fhirVersion" yaml:"fhirVersion"`
	CorePackage string `json:"corePackage" yaml:"corePackage"`
	Module      string `json:"module" yaml:"module"`
}

// Info returns the package details of v.
func (v FHIRVersion) Info() (VersionInfo, bool) {
	cfg, ok := versionConfigs[v]
	if !ok {
		return VersionInfo{}, false
	}
	return VersionInfo{
		Release:     v.String(),
		FHIRVersion: cfg.FHIRVersionString,
		CorePackage: cfg.CorePackageName + "#" + cfg.CorePackageVersion,
		Module:      Version,
	}, true
}
