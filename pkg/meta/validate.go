package meta

import (
	"fmt"
	"strings"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/primitive"
	"github.com/gofhir/models/pkg/reference"
)

// sourceStructure tags issues raised by the table-driven checks.
const sourceStructure = "structure"

// Structured is a record that exposes its field slots in declaration order.
type Structured interface {
	model.Element
	Fields() []model.Field
}

// Check validates record against its TypeInfo in the default registry.
func Check(record Structured) error {
	return defaultRegistry.Check(record)
}

// Check validates record against its registered TypeInfo. It returns a
// *issue.ValidationError listing every error found, or nil.
func (r *Registry) Check(record Structured) error {
	name := record.TypeName()
	info, ok := r.GetByType(name)
	if !ok {
		res := issue.NewResult()
		res.AddErrorWithID(issue.DiagUnknownType, map[string]any{"type": name}, name)
		return res.Err(name)
	}

	res := issue.GetPooledResult()
	defer issue.ReleaseResult(res)
	Validate(info, record, res)
	return res.Err(info.Name)
}

// Validate applies the structural rules of info to record:
//   - required elements are present;
//   - repeating elements hold no nil entries and respect numeric maxima;
//   - choice elements hold one of the declared types;
//   - primitive children match their lexical form and required bindings;
//   - references point at an allowed target type when one can be inferred;
//   - datatypes and backbone elements carry a value or children.
//
// Children that are records themselves were validated by their own Build
// and are not revisited.
func Validate(info *TypeInfo, record Structured, result *issue.Result) {
	fields := record.Fields()
	for i := range fields {
		el, ok := info.Element(fields[i].Name)
		if !ok {
			continue
		}
		validateField(info, el, &fields[i], result)
	}

	if (info.Kind == KindComplex || info.Kind == KindBackbone) && !HasContent(fields) {
		addError(result, issue.DiagValueOrChildren, map[string]any{"path": info.Name}, info.Name)
	}

	if info.Check != nil {
		info.Check(record, info.Name, result)
	}
}

// HasContent reports whether any slot other than the element id is
// populated. Nil list entries do not count.
func HasContent(fields []model.Field) bool {
	for i := range fields {
		f := &fields[i]
		if f.Name == "id" || f.Empty() {
			continue
		}
		if f.IsValue() {
			return true
		}
		for _, node := range f.Nodes() {
			if node != nil {
				return true
			}
		}
	}
	return false
}

func validateField(info *TypeInfo, el *ElementInfo, f *model.Field, result *issue.Result) {
	if f.Empty() {
		if el.Required() {
			path := info.Path(declaredName(el))
			addError(result, issue.DiagRequired, map[string]any{"path": path}, path)
		}
		return
	}

	path := info.Path(f.ElementName())

	if limit := el.MaxCount(); limit > 1 && f.Len() > limit {
		addError(result, issue.DiagCardinalityMax,
			map[string]any{"path": path, "max": limit, "count": f.Len()}, path)
	}

	if f.IsValue() {
		validateRaw(el, f, path, result)
		return
	}

	if f.Choice && !el.AllowsType(f.Type) {
		choicePath := info.Path(declaredName(el))
		addError(result, issue.DiagChoiceType, map[string]any{
			"type":    f.Type,
			"path":    choicePath,
			"allowed": strings.Join(el.Types, ", "),
		}, choicePath)
	}

	for i, node := range f.Nodes() {
		nodePath := path
		if f.IsList() {
			nodePath = fmt.Sprintf("%s[%d]", path, i)
		}
		if node == nil {
			addError(result, issue.DiagNullElement, map[string]any{"path": path, "index": i}, nodePath)
			continue
		}
		validateNode(el, node, nodePath, result)
	}
}

func validateRaw(el *ElementInfo, f *model.Field, path string, result *issue.Result) {
	raw, _ := f.RawValue()
	s, ok := raw.(string)
	if !ok || len(el.Types) != 1 {
		return
	}
	typeName := el.Types[0]
	if err := primitive.Check(typeName, s); err != nil {
		id := issue.DiagPrimitiveFormat
		if typeName == primitive.TypeID {
			id = issue.DiagIDFormat
		}
		addError(result, id, map[string]any{"value": s, "type": typeName}, path)
	}
}

func validateNode(el *ElementInfo, node model.Element, path string, result *issue.Result) {
	if prim, ok := node.(model.Primitive); ok {
		validatePrimitive(el, prim, path, result)
	}

	if ref, ok := node.(model.ReferenceLike); ok && len(el.Targets) > 0 {
		if target, ok := ref.ReferencedType(); ok && !reference.TypeAllowed(target, el.Targets) {
			addError(result, issue.DiagReferenceTarget, map[string]any{
				"type":    target,
				"allowed": strings.Join(el.Targets, ", "),
			}, path)
		}
	}
}

func validatePrimitive(el *ElementInfo, prim model.Primitive, path string, result *issue.Result) {
	s, structured := prim.(Structured)
	if structured {
		for _, f := range s.Fields() {
			for i, node := range f.Nodes() {
				if node == nil {
					listPath := path + "." + f.Name
					addError(result, issue.DiagNullElement, map[string]any{"path": listPath, "index": i},
						fmt.Sprintf("%s[%d]", listPath, i))
				}
			}
		}
	}

	value, has := prim.PrimitiveValue()
	if !has {
		if structured && !HasContent(s.Fields()) {
			addError(result, issue.DiagValueOrChildren, map[string]any{"path": path}, path)
		}
		return
	}

	if err := prim.ValidateValue(); err != nil {
		addError(result, issue.DiagPrimitiveFormat, map[string]any{
			"value": fmt.Sprint(value),
			"type":  prim.TypeName(),
		}, path)
		return
	}

	if el.Binding.Enforced() {
		if code, ok := value.(string); ok && !el.Binding.Contains(code) {
			addError(result, issue.DiagBindingRequired, map[string]any{
				"code":     code,
				"valueSet": el.Binding.ValueSet,
			}, path)
		}
	}
}

// declaredName returns the element name as declared, with [x] for choices.
func declaredName(el *ElementInfo) string {
	if el.IsChoice() {
		return el.Name + "[x]"
	}
	return el.Name
}

func addError(result *issue.Result, id issue.DiagnosticID, params map[string]any, path string) {
	result.AddErrorWithID(id, params, path)
	result.Issues[len(result.Issues)-1].Source = sourceStructure
}
