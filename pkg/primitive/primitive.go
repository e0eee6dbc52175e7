// Package primitive checks the lexical forms of FHIR primitive datatypes.
package primitive

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FHIR primitive type codes.
const (
	TypeBoolean      = "boolean"
	TypeInteger      = "integer"
	TypeInteger64    = "integer64"
	TypePositiveInt  = "positiveInt"
	TypeUnsignedInt  = "unsignedInt"
	TypeDecimal      = "decimal"
	TypeString       = "string"
	TypeMarkdown     = "markdown"
	TypeCode         = "code"
	TypeID           = "id"
	TypeURI          = "uri"
	TypeURL          = "url"
	TypeCanonical    = "canonical"
	TypeUUID         = "uuid"
	TypeOID          = "oid"
	TypeBase64Binary = "base64Binary"
	TypeDate         = "date"
	TypeDateTime     = "dateTime"
	TypeInstant      = "instant"
	TypeTime         = "time"
	TypeXHTML        = "xhtml"
)

// ErrInvalid is matched by every FormatError.
var ErrInvalid = errors.New("invalid primitive value")

// FormatError reports a value that does not match its primitive type.
type FormatError struct {
	Type   string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Type, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalid) hold.
func (e *FormatError) Is(target error) bool { return target == ErrInvalid }

var (
	decimalRegex   = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)
	uriRegex       = regexp.MustCompile(`^\S+$`)
	canonicalRegex = regexp.MustCompile(`^\S+(\|\S+)?$`)
	codeRegex      = regexp.MustCompile(`^\S+(\s\S+)*$`)
	idRegex        = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	oidRegex       = regexp.MustCompile(`^urn:oid:[012](\.(0|[1-9]\d*))+$`)
	instantRegex   = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[012])-(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))$`)
	dateRegex      = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01]))?)?$`)
	dateTimeRegex  = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01])(T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))?)?)?)?$`)
	timeRegex      = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?$`)
)

var validate = validator.New()

// maxStringLength is the FHIR limit for string and markdown values.
const maxStringLength = 1024 * 1024

// IsPrimitive reports whether typeName is a primitive type code.
func IsPrimitive(typeName string) bool {
	switch typeName {
	case TypeBoolean, TypeInteger, TypeInteger64, TypePositiveInt, TypeUnsignedInt,
		TypeDecimal, TypeString, TypeMarkdown, TypeCode, TypeID, TypeURI, TypeURL,
		TypeCanonical, TypeUUID, TypeOID, TypeBase64Binary, TypeDate, TypeDateTime,
		TypeInstant, TypeTime, TypeXHTML:
		return true
	default:
		return false
	}
}

// Check validates the string form of a primitive value of typeName.
// Unknown type codes are accepted.
func Check(typeName, value string) error {
	switch typeName {
	case TypeString, TypeMarkdown:
		if value == "" {
			return invalid(typeName, value, "must not be empty")
		}
		if len(value) > maxStringLength {
			return invalid(typeName, value[:32]+"...", "exceeds 1MB")
		}
	case TypeCode:
		return match(codeRegex, typeName, value)
	case TypeID:
		return match(idRegex, typeName, value)
	case TypeURI:
		return match(uriRegex, typeName, value)
	case TypeURL:
		if err := validate.Var(value, "required,url"); err != nil {
			return invalid(typeName, value, "not an absolute URL")
		}
	case TypeCanonical:
		return match(canonicalRegex, typeName, value)
	case TypeUUID:
		rest, ok := strings.CutPrefix(value, "urn:uuid:")
		if !ok {
			return invalid(typeName, value, "missing urn:uuid: prefix")
		}
		if _, err := uuid.Parse(rest); err != nil {
			return invalid(typeName, value, err.Error())
		}
	case TypeOID:
		return match(oidRegex, typeName, value)
	case TypeDecimal:
		return match(decimalRegex, typeName, value)
	case TypeBase64Binary:
		if _, err := base64.StdEncoding.DecodeString(value); err != nil {
			return invalid(typeName, value, "not base64 encoded")
		}
	case TypeDate:
		return match(dateRegex, typeName, value)
	case TypeDateTime:
		return match(dateTimeRegex, typeName, value)
	case TypeInstant:
		return match(instantRegex, typeName, value)
	case TypeTime:
		return match(timeRegex, typeName, value)
	case TypeXHTML:
		trimmed := strings.TrimSpace(value)
		if !strings.HasPrefix(trimmed, "<div") || !strings.HasSuffix(trimmed, "</div>") {
			return invalid(typeName, value, "must be a single div element")
		}
	}
	return nil
}

// CheckInteger validates the range of an integer-family value.
func CheckInteger(typeName string, v int64) error {
	switch typeName {
	case TypeInteger:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return invalid(typeName, fmt.Sprint(v), "out of 32-bit range")
		}
	case TypePositiveInt:
		if v < 1 || v > math.MaxInt32 {
			return invalid(typeName, fmt.Sprint(v), "must be between 1 and 2147483647")
		}
	case TypeUnsignedInt:
		if v < 0 || v > math.MaxInt32 {
			return invalid(typeName, fmt.Sprint(v), "must be between 0 and 2147483647")
		}
	}
	return nil
}

func match(re *regexp.Regexp, typeName, value string) error {
	if !re.MatchString(value) {
		return invalid(typeName, value, "does not match "+re.String())
	}
	return nil
}

func invalid(typeName, value, reason string) error {
	return &FormatError{Type: typeName, Value: value, Reason: reason}
}
