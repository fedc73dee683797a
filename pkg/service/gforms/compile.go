package gforms

import (
	"github.com/formloom/formloom/pkg/domain/model"
	"github.com/formloom/formloom/pkg/domain/types"
	"google.golang.org/api/forms/v1"
)

// implicitCheckboxOption backs checkbox fields that arrive without options
const implicitCheckboxOption = "Yes"

// CompiledBatch is the ordered structural operation list for one schema,
// plus the intended zero-based position of every question by label.
type CompiledBatch struct {
	Requests  []*forms.Request
	Positions map[string]int64
}

// Compile maps a normalized schema to the structural batch. It is a pure
// function: no platform call happens here.
//
// Positions are global across the whole schema and strictly contiguous from
// zero. The first section is represented by the container itself and gets no
// header item; every later section contributes one page-break item before its
// questions. Option goTo values are carried verbatim; section-title targets
// are rewritten to platform item IDs by Resolve once those IDs exist.
func Compile(s *model.FormSchema) *CompiledBatch {
	batch := &CompiledBatch{
		Positions: make(map[string]int64),
	}

	description := ""
	if s.Description != nil {
		description = *s.Description
	}
	batch.Requests = append(batch.Requests, &forms.Request{
		UpdateFormInfo: &forms.UpdateFormInfoRequest{
			Info:       &forms.Info{Description: description},
			UpdateMask: "description",
		},
	})

	var index int64
	for si, sec := range s.Sections {
		if si > 0 {
			batch.Requests = append(batch.Requests, &forms.Request{
				CreateItem: &forms.CreateItemRequest{
					Item: &forms.Item{
						Title:         sec.Title,
						Description:   sec.Description,
						PageBreakItem: &forms.PageBreakItem{},
					},
					Location: location(index),
				},
			})
			index++
		}

		for _, f := range sec.Fields {
			batch.Requests = append(batch.Requests, &forms.Request{
				CreateItem: &forms.CreateItemRequest{
					Item:     questionItem(f),
					Location: location(index),
				},
			})
			batch.Positions[f.Label] = index
			index++
		}
	}

	return batch
}

func location(index int64) *forms.Location {
	return &forms.Location{
		Index: index,
		// index 0 must still be serialized
		ForceSendFields: []string{"Index"},
	}
}

func questionItem(f model.Field) *forms.Item {
	q := &forms.Question{Required: f.Required}

	switch f.Type {
	case types.FieldTypeTextarea:
		q.TextQuestion = &forms.TextQuestion{Paragraph: true}
	case types.FieldTypeDate:
		q.DateQuestion = &forms.DateQuestion{}
	case types.FieldTypeTime:
		q.TimeQuestion = &forms.TimeQuestion{}
	case types.FieldTypeRating:
		scale := f.Scale
		if scale <= 0 {
			scale = 5
		}
		q.ScaleQuestion = &forms.ScaleQuestion{Low: 1, High: int64(scale)}
	case types.FieldTypeCheckbox, types.FieldTypeRadio, types.FieldTypeSelect:
		q.ChoiceQuestion = choiceQuestion(f)
	default:
		// text, email, number, tel, url
		q.TextQuestion = &forms.TextQuestion{}
	}

	return &forms.Item{
		Title:        f.Label,
		QuestionItem: &forms.QuestionItem{Question: q},
	}
}

func choiceQuestion(f model.Field) *forms.ChoiceQuestion {
	options := make([]*forms.Option, 0, len(f.Options))
	for _, o := range f.Options {
		fo := &forms.Option{Value: o.Display()}
		switch {
		case o.GoTo == "":
		case types.IsBuiltinNavAction(o.GoTo):
			fo.GoToAction = o.GoTo
		default:
			// provisional symbolic target, resolved in the second pass
			fo.GoToSectionId = o.GoTo
		}
		options = append(options, fo)
	}

	if f.Type == types.FieldTypeCheckbox && len(options) == 0 {
		options = append(options, &forms.Option{Value: implicitCheckboxOption})
	}

	return &forms.ChoiceQuestion{
		Type:    choiceType(f.Type),
		Options: options,
	}
}

func choiceType(t types.FieldType) string {
	switch t {
	case types.FieldTypeCheckbox:
		return "CHECKBOX"
	case types.FieldTypeSelect:
		return "DROP_DOWN"
	default:
		return "RADIO"
	}
}
