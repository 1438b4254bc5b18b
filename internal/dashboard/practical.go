package dashboard

import (
	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/generators"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/utils"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

// Practical fills the lab-record template.
type Practical struct {
	history *History
}

// Generate requires a title; context is optional.
func (p *Practical) Generate(title, context string) (Output[models.PracticalFile], error) {
	if err := validation.Required("experiment title", title); err != nil {
		return Output[models.PracticalFile]{}, err
	}

	pf := generators.PracticalFile(title, context)
	doc := generators.FormatPracticalFile(title, context, pf)
	out := Output[models.PracticalFile]{
		Value:    pf,
		Text:     doc,
		Filename: "practical-" + utils.Slug(title) + ".txt",
	}
	record(p.history, &out, constants.OutputPractical,
		"Practical: "+title,
		generators.Preview(pf.Aim, constants.PreviewLength),
		doc)
	return out, nil
}
