package resource

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func ref(t *testing.T, literal string) *datatype.Reference {
	t.Helper()
	r, err := datatype.NewReferenceBuilder().ReferenceValue(literal).Build()
	if err != nil {
		t.Fatalf("Reference %q: %v", literal, err)
	}
	return r
}

func concept(t *testing.T, code string) *datatype.CodeableConcept {
	t.Helper()
	coding, err := datatype.NewCodingBuilder().SystemValue("http://example.org/codes").CodeValue(code).Build()
	if err != nil {
		t.Fatal(err)
	}
	cc, err := datatype.NewCodeableConceptBuilder().Coding(coding).Build()
	if err != nil {
		t.Fatal(err)
	}
	return cc
}

func identifier(t *testing.T, value string) *datatype.Identifier {
	t.Helper()
	id, err := datatype.NewIdentifierBuilder().SystemValue("http://example.org/ids").ValueValue(value).Build()
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func responseBuilder(t *testing.T) *AppointmentResponseBuilder {
	t.Helper()
	return NewAppointmentResponseBuilder().
		ID("resp-1").
		Appointment(ref(t, "Appointment/a1")).
		Actor(ref(t, "Patient/p1")).
		ParticipantType(concept(t, "ATND")).
		ParticipantStatusValue(ParticipationAccepted).
		StartValue("2024-05-01T09:00:00Z").
		EndValue("2024-05-01T09:30:00Z").
		CommentValue("See you then")
}

func citedArtifact(t *testing.T) *CitationCitedArtifact {
	t.Helper()
	instance, err := NewCitationCitedArtifactContributorshipEntryContributionInstanceBuilder().
		Type(concept(t, "reviewed")).
		TimeValue("2024-01-15").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	entry, err := NewCitationCitedArtifactContributorshipEntryBuilder().
		Contributor(ref(t, "Practitioner/pr1")).
		ContributionInstance(instance).
		RankingOrderValue(1).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	contributorship, err := NewCitationCitedArtifactContributorshipBuilder().
		CompleteValue(true).
		Entry(entry).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	title, err := NewCitationCitedArtifactTitleBuilder().TextValue("A study of things").Build()
	if err != nil {
		t.Fatal(err)
	}
	artifact, err := NewCitationCitedArtifactBuilder().
		Title(title).
		Contributorship(contributorship).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return artifact
}

func citationBuilder(t *testing.T) *CitationBuilder {
	t.Helper()
	return NewCitationBuilder().
		ID("cit-1").
		URLValue("http://example.org/Citation/cit-1").
		Identifier(identifier(t, "a"), identifier(t, "b")).
		VersionAlgorithmStringValue("semver").
		NameValue("ExampleCitation").
		StatusValue("active").
		CitedArtifact(citedArtifact(t))
}

func requireIssue(t *testing.T, err error, id issue.DiagnosticID, path string) {
	t.Helper()
	var ve *issue.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *issue.ValidationError, got %v", err)
	}
	if !ve.HasMessage(id) || !ve.HasPath(path) {
		t.Errorf("want %s at %s, got %v", id, path, ve)
	}
}

func TestRoundTrip(t *testing.T) {
	resp, err := responseBuilder(t).Build()
	if err != nil {
		t.Fatalf("AppointmentResponse Build() error = %v", err)
	}
	again, err := resp.ToBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	if !again.Equal(resp) || again.Hash() != resp.Hash() {
		t.Error("AppointmentResponse round trip changed the record")
	}

	cit, err := citationBuilder(t).Build()
	if err != nil {
		t.Fatalf("Citation Build() error = %v", err)
	}
	citAgain, err := cit.ToBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	if !citAgain.Equal(cit) || citAgain.Hash() != cit.Hash() {
		t.Error("Citation round trip changed the record")
	}
}

func TestBuildFailures(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) error
		want  issue.DiagnosticID
		path  string
	}{
		{
			name: "missing participantStatus",
			build: func(t *testing.T) error {
				_, err := responseBuilder(t).ParticipantStatus(nil).Build()
				return err
			},
			want: issue.DiagRequired,
			path: "AppointmentResponse.participantStatus",
		},
		{
			name: "missing appointment",
			build: func(t *testing.T) error {
				_, err := responseBuilder(t).Appointment(nil).Build()
				return err
			},
			want: issue.DiagRequired,
			path: "AppointmentResponse.appointment",
		},
		{
			name: "participantStatus outside value set",
			build: func(t *testing.T) error {
				_, err := responseBuilder(t).ParticipantStatusValue("maybe").Build()
				return err
			},
			want: issue.DiagBindingRequired,
			path: "AppointmentResponse.participantStatus",
		},
		{
			name: "actor of a disallowed type",
			build: func(t *testing.T) error {
				_, err := responseBuilder(t).Actor(ref(t, "Medication/m1")).Build()
				return err
			},
			want: issue.DiagReferenceTarget,
			path: "AppointmentResponse.actor",
		},
		{
			name: "appointment of a disallowed type",
			build: func(t *testing.T) error {
				_, err := responseBuilder(t).Appointment(ref(t, "Encounter/e1")).Build()
				return err
			},
			want: issue.DiagReferenceTarget,
			path: "AppointmentResponse.appointment",
		},
		{
			name: "invalid resource id",
			build: func(t *testing.T) error {
				_, err := responseBuilder(t).ID("not valid!").Build()
				return err
			},
			want: issue.DiagIDFormat,
			path: "AppointmentResponse.id",
		},
		{
			name: "nil participantType entry",
			build: func(t *testing.T) error {
				_, err := responseBuilder(t).ParticipantType(nil).Build()
				return err
			},
			want: issue.DiagNullElement,
			path: "AppointmentResponse.participantType[1]",
		},
		{
			name: "missing citation status",
			build: func(t *testing.T) error {
				_, err := citationBuilder(t).Status(nil).Build()
				return err
			},
			want: issue.DiagRequired,
			path: "Citation.status",
		},
		{
			name: "citation versionAlgorithm of undeclared type",
			build: func(t *testing.T) error {
				_, err := citationBuilder(t).VersionAlgorithm(datatype.NewBoolean(true)).Build()
				return err
			},
			want: issue.DiagChoiceType,
			path: "Citation.versionAlgorithm[x]",
		},
		{
			name: "summary without text",
			build: func(t *testing.T) error {
				_, err := NewCitationSummaryBuilder().Style(concept(t, "vancouver")).Build()
				return err
			},
			want: issue.DiagRequired,
			path: "Citation.summary.text",
		},
		{
			name: "empty backbone",
			build: func(t *testing.T) error {
				_, err := NewCitationCitedArtifactBuilder().Build()
				return err
			},
			want: issue.DiagValueOrChildren,
			path: "Citation.citedArtifact",
		},
		{
			name: "contributor of a disallowed type",
			build: func(t *testing.T) error {
				_, err := NewCitationCitedArtifactContributorshipEntryBuilder().Contributor(ref(t, "Patient/p1")).Build()
				return err
			},
			want: issue.DiagReferenceTarget,
			path: "Citation.citedArtifact.contributorship.entry.contributor",
		},
		{
			name: "relatesTo type from the expanded value set",
			build: func(t *testing.T) error {
				_, err := NewCitationCitedArtifactRelatesToBuilder().TypeValue("not-a-type").Build()
				return err
			},
			want: issue.DiagBindingRequired,
			path: "Citation.citedArtifact.relatesTo.type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireIssue(t, tt.build(t), tt.want, tt.path)
		})
	}
}

func TestRelatesToReprint(t *testing.T) {
	_, err := NewCitationCitedArtifactRelatesToBuilder().
		TypeValue("reprint-of").
		CitationValue("Original article").
		Build()
	if err != nil {
		t.Fatalf("reprint-of should be accepted: %v", err)
	}
}

func TestNilCollectionReplacement(t *testing.T) {
	b := responseBuilder(t).SetParticipantType(nil)
	var nce *model.NilCollectionError
	if !errors.As(b.Err(), &nce) || nce.Field != "participantType" {
		t.Fatalf("Err() = %v", b.Err())
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("Build() should fail after a nil replacement")
	}
}

func TestListsAreImmutable(t *testing.T) {
	cit, err := citationBuilder(t).Build()
	if err != nil {
		t.Fatal(err)
	}
	ids := cit.Identifier()
	ids[0] = identifier(t, "z")
	_ = append(ids, identifier(t, "y"))

	got := cit.Identifier()
	if len(got) != 2 || got[0].Value().Value() != "a" {
		t.Errorf("Identifier() changed after mutating a returned slice: %v", got)
	}
}

func TestBuilderDoesNotAliasInput(t *testing.T) {
	input := []*datatype.Identifier{identifier(t, "a")}
	b := citationBuilder(t).SetIdentifier(input)
	first, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	input[0] = identifier(t, "changed")
	if first.Identifier()[0].Value().Value() != "a" {
		t.Error("record shares storage with the builder input")
	}

	second, err := b.Identifier(identifier(t, "b")).Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Identifier()) != 1 || len(second.Identifier()) != 2 {
		t.Error("builder reuse leaked into an earlier record")
	}
}

func TestChoiceExclusivity(t *testing.T) {
	coding, err := datatype.NewCodingBuilder().SystemValue("http://hl7.org/fhir/version-algorithm").CodeValue("semver").Build()
	if err != nil {
		t.Fatal(err)
	}
	cit, err := citationBuilder(t).
		VersionAlgorithmStringValue("semver").
		VersionAlgorithmCoding(coding).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cit.VersionAlgorithmString(); ok {
		t.Error("string value survived a later Coding assignment")
	}
	if got, ok := cit.VersionAlgorithmCoding(); !ok || !got.Equal(coding) {
		t.Errorf("VersionAlgorithmCoding() = %v, %v", got, ok)
	}

	cleared, err := cit.ToBuilder().VersionAlgorithmCoding(nil).Build()
	if err != nil {
		t.Fatal(err)
	}
	if cleared.VersionAlgorithm() != nil {
		t.Error("a nil typed setter must clear the choice")
	}
}

func TestTraversalCompleteness(t *testing.T) {
	cit, err := citationBuilder(t).Build()
	if err != nil {
		t.Fatal(err)
	}

	var paths []string
	for _, l := range model.Descendants(cit) {
		paths = append(paths, l.Path)
	}
	joined := strings.Join(paths, "\n")

	for _, want := range []string{
		"Citation.identifier[1]",
		"Citation.versionAlgorithmString",
		"Citation.citedArtifact.title[0].text",
		"Citation.citedArtifact.contributorship.entry[0].contributor.reference",
		"Citation.citedArtifact.contributorship.entry[0].contributionInstance[0].type.coding[0].code",
		"Citation.citedArtifact.contributorship.entry[0].contributionInstance[0].time",
	} {
		if !strings.Contains(joined, want+"\n") && !strings.HasSuffix(joined, want) {
			t.Errorf("traversal missed %s", want)
		}
	}

	order := []string{"Citation.identifier[0]", "Citation.versionAlgorithmString", "Citation.name", "Citation.status", "Citation.citedArtifact"}
	last := -1
	for _, p := range order {
		i := indexOf(paths, p)
		if i <= last {
			t.Fatalf("%s visited out of declaration order: %v", p, paths)
		}
		last = i
	}

	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			t.Errorf("%s visited more than once", p)
		}
		seen[p] = true
	}
	if got, want := len(paths), countNodes(cit); got != want {
		t.Errorf("Descendants() visited %d elements, want %d", got, want)
	}
}

// countNodes counts e and every populated element below it from the
// declared field slots.
func countNodes(e model.Element) int {
	s, ok := e.(meta.Structured)
	if !ok {
		return 1
	}
	n := 1
	for _, f := range s.Fields() {
		for _, child := range f.Nodes() {
			if child != nil {
				n += countNodes(child)
			}
		}
	}
	return n
}

func TestNilExtensionInPrimitive(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		path  string
	}{
		{
			name: "required code with only a nil extension",
			build: func() error {
				_, err := NewAppointmentResponseBuilder().
					Appointment(ref(t, "Appointment/a1")).
					Actor(ref(t, "Patient/p1")).
					ParticipantStatus(datatype.AbsentCode(datatype.WithExtension(nil))).
					Build()
				return err
			},
			path: "AppointmentResponse.participantStatus.extension[0]",
		},
		{
			name: "string with a value and a nil extension",
			build: func() error {
				_, err := citationBuilder(t).Title(datatype.NewString("x", datatype.WithExtension(nil))).Build()
				return err
			},
			path: "Citation.title.extension[0]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireIssue(t, tt.build(), issue.DiagNullElement, tt.path)
		})
	}

	_, err := NewAppointmentResponseBuilder().
		Appointment(ref(t, "Appointment/a1")).
		Actor(ref(t, "Patient/p1")).
		ParticipantStatus(datatype.AbsentCode(datatype.WithExtension(nil))).
		Build()
	requireIssue(t, err, issue.DiagValueOrChildren, "AppointmentResponse.participantStatus")
}

func TestVersionAlgorithmTypedNil(t *testing.T) {
	cit, err := citationBuilder(t).VersionAlgorithm((*datatype.String)(nil)).Build()
	if err != nil {
		t.Fatal(err)
	}
	if cit.VersionAlgorithm() != nil {
		t.Errorf("VersionAlgorithm() = %v, want nil", cit.VersionAlgorithm())
	}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestEqualityIsOrderSensitive(t *testing.T) {
	a, err := citationBuilder(t).Build()
	if err != nil {
		t.Fatal(err)
	}
	b, err := citationBuilder(t).SetIdentifier([]*datatype.Identifier{identifier(t, "b"), identifier(t, "a")}).Build()
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(b) {
		t.Error("identifier order must matter for equality")
	}
	if a.Hash() == b.Hash() {
		t.Error("hash should differ for reordered lists")
	}

	c, err := citationBuilder(t).Build()
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(c) || a.Hash() != c.Hash() {
		t.Error("equal content must yield equal records and hashes")
	}
	if a.Equal(nil) {
		t.Error("a record never equals nil")
	}
}

func TestHashIsStableAcrossGoroutines(t *testing.T) {
	resp, err := responseBuilder(t).Build()
	if err != nil {
		t.Fatal(err)
	}
	want := model.Hash(resp)

	var wg sync.WaitGroup
	hashes := make([]uint64, 8)
	for i := range hashes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hashes[i] = resp.Hash()
		}(i)
	}
	wg.Wait()
	for _, h := range hashes {
		if h != want {
			t.Fatalf("Hash() = %d, want %d", h, want)
		}
	}
}

func TestContainedResources(t *testing.T) {
	cit, err := citationBuilder(t).ID("inner").Build()
	if err != nil {
		t.Fatal(err)
	}
	resp, err := responseBuilder(t).Contained(cit).Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Contained(); len(got) != 1 || got[0].ResourceType() != "Citation" || got[0].ResourceID() != "inner" {
		t.Errorf("Contained() = %v", got)
	}
	found := false
	for _, l := range model.Descendants(resp) {
		if l.Path == "AppointmentResponse.contained[0].citedArtifact" {
			found = true
		}
	}
	if !found {
		t.Error("contained resource was not traversed")
	}
}

// Every record must expose its slots in the order its metadata declares.
func TestFieldsMatchMetadata(t *testing.T) {
	records := []meta.Structured{
		&AppointmentResponse{},
		&Citation{},
		&CitationSummary{},
		&CitationClassification{},
		&CitationStatusDate{},
		&CitationCitedArtifact{},
		&CitationCitedArtifactVersion{},
		&CitationCitedArtifactStatusDate{},
		&CitationCitedArtifactTitle{},
		&CitationCitedArtifactAbstract{},
		&CitationCitedArtifactPart{},
		&CitationCitedArtifactRelatesTo{},
		&CitationCitedArtifactPublicationForm{},
		&CitationCitedArtifactPublicationFormPublishedIn{},
		&CitationCitedArtifactWebLocation{},
		&CitationCitedArtifactClassification{},
		&CitationCitedArtifactContributorship{},
		&CitationCitedArtifactContributorshipEntry{},
		&CitationCitedArtifactContributorshipEntryContributionInstance{},
		&CitationCitedArtifactContributorshipSummary{},
	}
	for _, r := range records {
		t.Run(r.TypeName(), func(t *testing.T) {
			info, ok := meta.Lookup(r.TypeName())
			if !ok {
				t.Fatalf("%s is not registered", r.TypeName())
			}
			fields := r.Fields()
			if len(fields) != len(info.Elements) {
				t.Fatalf("%d fields, %d elements", len(fields), len(info.Elements))
			}
			for i := range fields {
				if fields[i].Name != info.Elements[i].Name {
					t.Errorf("field %d = %s, metadata says %s", i, fields[i].Name, info.Elements[i].Name)
				}
			}
		})
	}

	if got := len(meta.Default().Backbones("Citation")); got != len(records)-2 {
		t.Errorf("Backbones(Citation) = %d, want %d", got, len(records)-2)
	}
}
