package briefing

import (
	"fmt"
	"strings"
	"time"

	"github.com/annaddsgr/Portfolio/pkg/document"
	"github.com/annaddsgr/Portfolio/pkg/i18n"
)

type sectionDef struct {
	title  i18n.Key
	fields []labelled
}

type labelled struct {
	label i18n.Key
	field Field
}

// The five sections mirror the five steps and are always emitted in this
// order, whatever the user filled in.
var sectionLayout = [...]sectionDef{
	{i18n.SectionIdentification, []labelled{
		{i18n.LabelClient, FieldName},
		{i18n.LabelBrand, FieldBrandName},
		{i18n.LabelEmail, FieldEmail},
		{i18n.LabelWhatsApp, FieldWhatsApp},
		{i18n.LabelInstagram, FieldInstagram},
	}},
	{i18n.SectionBrand, []labelled{
		{i18n.LabelHistory, FieldHistory},
		{i18n.LabelCompetitors, FieldCompetitors},
		{i18n.LabelDifferentiation, FieldDifferentiation},
	}},
	{i18n.SectionProject, []labelled{
		{i18n.LabelService, FieldService},
		{i18n.LabelProjectType, FieldProjectType},
		{i18n.LabelDeliverables, FieldDeliverables},
	}},
	{i18n.SectionAesthetic, []labelled{
		{i18n.LabelPurpose, FieldPurpose},
		{i18n.LabelAudience, FieldAudience},
		{i18n.LabelKeywords, FieldKeywords},
		{i18n.LabelColors, FieldColors},
		{i18n.LabelReferences, FieldReferences},
	}},
	{i18n.SectionLogistics, []labelled{
		{i18n.LabelDeadline, FieldDeadline},
		{i18n.LabelInvestment, FieldInvestment},
	}},
}

// Sections maps the answers onto the document sections. Empty values are
// replaced by the "not informed" placeholder.
func Sections(a Answers, tr i18n.Translator) []document.Section {
	placeholder := tr.T(i18n.DocNotInformed)
	out := make([]document.Section, 0, len(sectionLayout))
	for _, def := range sectionLayout {
		s := document.Section{
			Title:   tr.T(def.title),
			Entries: make([]document.Entry, 0, len(def.fields)),
		}
		for _, lf := range def.fields {
			s.Entries = append(s.Entries, document.Entry{
				Label: tr.T(lf.label),
				Value: orPlaceholder(a.Get(lf.field), placeholder),
			})
		}
		out = append(out, s)
	}
	return out
}

// Document assembles header and sections for the renderer.
func Document(a Answers, tr i18n.Translator, now time.Time) document.Document {
	return document.Document{
		Header: document.Header{
			Title:       tr.T(i18n.DocTitle),
			Studio:      tr.T(i18n.DocStudio),
			GeneratedAt: fmt.Sprintf(tr.T(i18n.DocGeneratedAt), now.Format("02/01/2006")),
			Footer:      tr.T(i18n.DocConfidential),
		},
		Sections:   Sections(a, tr),
		ClientName: a.Name,
	}
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
