package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fhirmodels "github.com/gofhir/models"
	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/convert"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

// errInvalid is returned when an example fails validation.
var errInvalid = errors.New("validation failed")

// app carries the state shared by the subcommands.
type app struct {
	cfg *Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "fhirmodels",
		Short:         "Inspect and exercise the FHIR R5 AppointmentResponse and Citation models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			level, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cmd.ErrOrStderr(), level)
			logger.SetDefault(a.log)
			a.log.Debug("config: output=%s strict=%v skip=%v", cfg.Output, cfg.Strict, cfg.Skip)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("output", "o", OutputText, "Output format: text, json, yaml")
	pf.String("log-level", logger.LevelWarn.String(), "Log level: debug, info, warn, error, none")
	pf.String("config", "", "Config file (yaml, json or toml)")
	pf.Bool("strict", false, "Treat warnings as errors")
	pf.StringSlice("skip", nil, "Invariant keys to skip (e.g. dom-6)")
	pf.Int("workers", 0, "Concurrent validations for example all --validate (0 = number of CPUs)")

	root.AddCommand(
		a.typesCmd(),
		a.describeCmd(),
		a.structureDefinitionCmd(),
		a.exampleCmd(),
		a.versionCmd(),
	)
	return root
}

// render writes v as JSON or YAML, or calls text for the text format.
func (a *app) render(w io.Writer, v any, text func(io.Writer) error) error {
	switch a.cfg.Output {
	case OutputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return text(w)
}

func (a *app) typesCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the registered types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := meta.Default()
			var names []string
			if kind == "" {
				names = reg.AllTypes()
			} else {
				names = reg.TypesOfKind(meta.Kind(kind))
			}
			return a.render(cmd.OutOrStdout(), names, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, strings.Join(names, "\n"))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only list one kind: primitive-type, complex-type, resource, backbone-element")
	return cmd
}

type elementView struct {
	Name        string   `json:"name" yaml:"name"`
	Cardinality string   `json:"cardinality" yaml:"cardinality"`
	Types       []string `json:"types" yaml:"types"`
	Targets     []string `json:"targets,omitempty" yaml:"targets,omitempty"`
	Binding     string   `json:"binding,omitempty" yaml:"binding,omitempty"`
	Summary     bool     `json:"summary,omitempty" yaml:"summary,omitempty"`
	Modifier    bool     `json:"modifier,omitempty" yaml:"modifier,omitempty"`
}

type constraintView struct {
	Key        string `json:"key" yaml:"key"`
	Severity   string `json:"severity" yaml:"severity"`
	Human      string `json:"human" yaml:"human"`
	Expression string `json:"expression" yaml:"expression"`
}

type typeView struct {
	Name        string           `json:"name" yaml:"name"`
	Kind        string           `json:"kind" yaml:"kind"`
	Base        string           `json:"base,omitempty" yaml:"base,omitempty"`
	URL         string           `json:"url,omitempty" yaml:"url,omitempty"`
	Elements    []elementView    `json:"elements" yaml:"elements"`
	Constraints []constraintView `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

func newTypeView(info *meta.TypeInfo) typeView {
	view := typeView{
		Name: info.Name,
		Kind: string(info.Kind),
		Base: info.Base,
		URL:  info.URL(),
	}
	for i := range info.Elements {
		el := &info.Elements[i]
		ev := elementView{
			Name:        el.Name,
			Cardinality: el.Cardinality(),
			Types:       el.Types,
			Targets:     el.Targets,
			Summary:     el.Summary,
			Modifier:    el.Modifier,
		}
		if el.IsChoice() {
			ev.Name += "[x]"
		}
		if el.Binding != nil {
			ev.Binding = el.Binding.Strength + " " + el.Binding.ValueSet
		}
		view.Elements = append(view.Elements, ev)
	}
	for _, c := range info.Constraints {
		view.Constraints = append(view.Constraints, constraintView{
			Key:        c.Key,
			Severity:   string(c.Severity),
			Human:      c.Human,
			Expression: c.Expression,
		})
	}
	return view
}

func (v typeView) writeText(w io.Writer) error {
	fmt.Fprintf(w, "%s (%s)", v.Name, v.Kind)
	if v.Base != "" {
		fmt.Fprintf(w, " : %s", v.Base)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, el := range v.Elements {
		types := strings.Join(el.Types, "|")
		if len(el.Targets) > 0 {
			types += "(" + strings.Join(el.Targets, "|") + ")"
		}
		flags := ""
		if el.Summary {
			flags += "Σ"
		}
		if el.Modifier {
			flags += "?!"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", el.Name, flags, el.Cardinality, types, el.Binding)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, c := range v.Constraints {
		fmt.Fprintf(w, "  %s (%s): %s\n", c.Key, c.Severity, c.Human)
	}
	return nil
}

func lookupType(name string) (*meta.TypeInfo, error) {
	info, ok := meta.Default().GetByType(name)
	if !ok {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	return info, nil
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <type>",
		Short: "Show the elements and invariants of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := lookupType(args[0])
			if err != nil {
				return err
			}
			view := newTypeView(info)
			return a.render(cmd.OutOrStdout(), view, view.writeText)
		},
	}
}

func (a *app) structureDefinitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "structuredefinition <type>",
		Aliases: []string{"sd"},
		Short:   "Export the metadata of a type as a StructureDefinition snapshot",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := lookupType(args[0])
			if err != nil {
				return err
			}
			sd := convert.NewConverter(nil).ToStructureDefinition(info)
			data, err := json.MarshalIndent(sd, "", "  ")
			if err != nil {
				return fmt.Errorf("encode %s: %w", info.Name, err)
			}
			if a.cfg.Output != OutputYAML {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			var doc any
			if err := json.Unmarshal(data, &doc); err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), doc, nil)
		},
	}
}

func (a *app) exampleCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "example <" + strings.Join(append(exampleNames(), exampleAll), "|") + ">",
		Short: "Build example resources and print or validate them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := lookupExamples(args[0])
			if err != nil {
				return err
			}
			if !check {
				return a.writeExamples(cmd.OutOrStdout(), resources)
			}
			return a.validateExamples(cmd.Context(), cmd.OutOrStdout(), resources)
		},
	}
	cmd.Flags().BoolVar(&check, "validate", false, "Validate the examples instead of printing them")
	return cmd
}

func (a *app) writeExamples(out io.Writer, resources []model.Resource) error {
	for i, res := range resources {
		var (
			data []byte
			err  error
		)
		if a.cfg.Output == OutputYAML {
			if i > 0 {
				data = []byte("---\n")
			}
			var doc []byte
			doc, err = codec.MarshalYAML(res)
			data = append(data, doc...)
		} else {
			data, err = codec.MarshalIndent(res, "", "  ")
			data = append(data, '\n')
		}
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// validateExamples runs the resources through ValidateAll, so --workers
// bounds the concurrency.
func (a *app) validateExamples(ctx context.Context, out io.Writer, resources []model.Resource) error {
	if ctx == nil {
		ctx = context.Background()
	}
	v := fhirmodels.New(
		fhirmodels.WithLogger(a.log),
		fhirmodels.WithStrictMode(a.cfg.Strict),
		fhirmodels.WithSkipConstraints(a.cfg.Skip...),
		fhirmodels.WithWorkerCount(a.cfg.Workers),
	)
	batch, err := v.ValidateAll(ctx, resources)
	if err != nil {
		return err
	}

	results := make([]*issue.Result, len(batch))
	invalid := false
	for i, br := range batch {
		if br.Err != nil {
			return br.Err
		}
		results[i] = br.Result
		invalid = invalid || br.Result.HasErrors()
	}

	var view any = results
	if len(results) == 1 {
		view = results[0]
	}
	if err := a.render(out, view, func(w io.Writer) error {
		for i, res := range results {
			if err := writeResult(w, resources[i].ResourceType(), res); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	if invalid {
		return errInvalid
	}
	return nil
}

func writeResult(w io.Writer, name string, result *issue.Result) error {
	status := "VALID"
	if result.HasErrors() {
		status = "INVALID"
	}
	fmt.Fprintf(w, "== %s ==\n", name)
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Errors: %d, Warnings: %d, Info: %d\n", result.ErrorCount(), result.WarningCount(), result.InfoCount())
	if result.Stats != nil {
		fmt.Fprintf(w, "Elements: %d, Invariants: %d\n", result.Stats.ElementsChecked, result.Stats.ConstraintsEvaluated)
	}
	for _, iss := range result.Issues {
		if _, err := fmt.Fprintf(w, "  %s\n", iss); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, _ := fhirmodels.R5.Info()
			return a.render(cmd.OutOrStdout(), info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "fhirmodels v%s (FHIR %s, %s)\n", info.Module, info.FHIRVersion, info.CorePackage)
				return err
			})
		},
	}
}
