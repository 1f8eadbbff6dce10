// Package briefing models the five-step intake form: the answers, the
// step navigator and the mapping of answers onto document sections.
package briefing

import (
	"fmt"
	"strings"
)

// Answers holds every field of the form. The zero value is a valid,
// completely empty briefing.
type Answers struct {
	// Step 1: identification
	Name      string `json:"name"`
	BrandName string `json:"brandName"`
	Email     string `json:"email"`
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`

	// Step 2: brand narrative
	History         string `json:"history"`
	Competitors     string `json:"competitors"`
	Differentiation string `json:"differentiation"`

	// Step 3: project scope
	Service      string `json:"service"`
	ProjectType  string `json:"isRedesign"`
	Deliverables string `json:"deliverables"`

	// Step 4: aesthetic direction
	Purpose    string `json:"purpose"`
	Audience   string `json:"audience"`
	Keywords   string `json:"keywords"`
	Colors     string `json:"colors"`
	References string `json:"references"`

	// Step 5: logistics
	Deadline   string `json:"deadline"`
	Investment string `json:"investment"`
}

type Field int

const (
	FieldName Field = iota
	FieldBrandName
	FieldEmail
	FieldWhatsApp
	FieldInstagram
	FieldHistory
	FieldCompetitors
	FieldDifferentiation
	FieldService
	FieldProjectType
	FieldDeliverables
	FieldPurpose
	FieldAudience
	FieldKeywords
	FieldColors
	FieldReferences
	FieldDeadline
	FieldInvestment

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldName:            "name",
	FieldBrandName:       "brandName",
	FieldEmail:           "email",
	FieldWhatsApp:        "whatsapp",
	FieldInstagram:       "instagram",
	FieldHistory:         "history",
	FieldCompetitors:     "competitors",
	FieldDifferentiation: "differentiation",
	FieldService:         "service",
	FieldProjectType:     "isRedesign",
	FieldDeliverables:    "deliverables",
	FieldPurpose:         "purpose",
	FieldAudience:        "audience",
	FieldKeywords:        "keywords",
	FieldColors:          "colors",
	FieldReferences:      "references",
	FieldDeadline:        "deadline",
	FieldInvestment:      "investment",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fields returns every field in form order.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// ParseField resolves the wire name used by the form inputs.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func (a *Answers) ref(f Field) *string {
	switch f {
	case FieldName:
		return &a.Name
	case FieldBrandName:
		return &a.BrandName
	case FieldEmail:
		return &a.Email
	case FieldWhatsApp:
		return &a.WhatsApp
	case FieldInstagram:
		return &a.Instagram
	case FieldHistory:
		return &a.History
	case FieldCompetitors:
		return &a.Competitors
	case FieldDifferentiation:
		return &a.Differentiation
	case FieldService:
		return &a.Service
	case FieldProjectType:
		return &a.ProjectType
	case FieldDeliverables:
		return &a.Deliverables
	case FieldPurpose:
		return &a.Purpose
	case FieldAudience:
		return &a.Audience
	case FieldKeywords:
		return &a.Keywords
	case FieldColors:
		return &a.Colors
	case FieldReferences:
		return &a.References
	case FieldDeadline:
		return &a.Deadline
	case FieldInvestment:
		return &a.Investment
	}
	return nil
}

// Get returns the value of f, or "" for an unknown field.
func (a Answers) Get(f Field) string {
	if p := a.ref(f); p != nil {
		return *p
	}
	return ""
}

// Set updates exactly one field. Unknown fields are ignored.
func (a *Answers) Set(f Field, value string) {
	if p := a.ref(f); p != nil {
		*p = value
	}
}

// HasService reports whether the project-scope service was chosen.
func (a Answers) HasService() bool {
	return strings.TrimSpace(a.Service) != ""
}
