package records

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field messages returned to API callers.
const (
	msgRequired     = "This field is required."
	msgDateFormat   = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgUnitUnique   = "unit with this id_unidade already exists."
	msgUnitNotFound = "Invalid pk \"%d\" - object does not exist."
)

// UnitInput is the full payload for creating or replacing a Unit.
type UnitInput struct {
	Name       string `json:"nome_unidade" validate:"required,max=200"`
	Group      string `json:"grupo_unidade" validate:"required,max=100"`
	Technician string `json:"tecnico_unidade" validate:"max=200"`
	ExternalID string `json:"id_unidade" validate:"required,max=50"`
	Notes      string `json:"observacoes"`
}

// UnmarshalJSON also accepts the short keys name and grupo. The Portuguese
// keys win when both are sent.
func (in *UnitInput) UnmarshalJSON(data []byte) error {
	type plain UnitInput
	var aux struct {
		plain
		ShortName  *string `json:"name"`
		ShortGroup *string `json:"grupo"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*in = UnitInput(aux.plain)
	if in.Name == "" && aux.ShortName != nil {
		in.Name = *aux.ShortName
	}
	if in.Group == "" && aux.ShortGroup != nil {
		in.Group = *aux.ShortGroup
	}
	return nil
}

func (in *UnitInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Group = strings.TrimSpace(in.Group)
	in.Technician = strings.TrimSpace(in.Technician)
	in.ExternalID = strings.TrimSpace(in.ExternalID)
}

// FailureInput is the full payload for creating or replacing a Failure.
// Active defaults to true when omitted.
type FailureInput struct {
	UnitID      *ID    `json:"unidade" validate:"required"`
	Description string `json:"falha_ocorrida" validate:"required,max=500"`
	Date        string `json:"data_falha" validate:"required"`
	Note        string `json:"observacao"`
	Active      *bool  `json:"ativa"`
}

// ID is a record reference that also accepts a quoted integer, which is how
// form selects submit it.
type ID int64

// UnmarshalJSON accepts 7 and "7".
func (id *ID) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(raw), Type: reflect.TypeOf(int64(0))}
	}
	*id = ID(v)
	return nil
}

func (in *FailureInput) normalize() {
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)
}

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// TypeMessage is the field message for a JSON value of the wrong type.
func TypeMessage(kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.String:
		return "Not a valid string."
	default:
		return "Invalid value."
	}
}

// fieldMessage renders a validator failure for API callers.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the %q constraint.", fe.Tag())
	}
}
