package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/formloom/formloom/pkg/domain/model"
	"github.com/formloom/formloom/pkg/domain/types"
)

func strPtr(s string) *string {
	return &s
}

func TestNormalize_WrapsFlatFields(t *testing.T) {
	schema := &model.FormSchema{
		Title:       "Feedback",
		Description: strPtr("d"),
		Fields: []model.Field{
			{Label: "Name", Type: types.FieldTypeText},
			{Label: "Rating", Type: types.FieldTypeRating, Scale: 5},
			{Label: "Comments", Type: types.FieldTypeTextarea},
		},
	}

	got := model.Normalize(schema)

	gt.Array(t, got.Sections).Length(1)
	gt.Value(t, got.Sections[0].Title).Equal("Feedback")
	gt.Array(t, got.Fields).Length(0)

	// the flat field sequence survives in the same order
	gt.Array(t, got.Sections[0].Fields).Length(3)
	gt.Value(t, got.Sections[0].Fields[0].Label).Equal("Name")
	gt.Value(t, got.Sections[0].Fields[1].Label).Equal("Rating")
	gt.Value(t, got.Sections[0].Fields[2].Label).Equal("Comments")
}

func TestNormalize_SyntheticSectionFallbackTitle(t *testing.T) {
	schema := &model.FormSchema{
		Title:  "   ",
		Fields: []model.Field{{Label: "Q", Type: types.FieldTypeText}},
	}

	got := model.Normalize(schema)

	gt.Array(t, got.Sections).Length(1)
	gt.Value(t, got.Sections[0].Title).Equal("Main Section")
}

func TestNormalize_CollapsesLegacyOptionKeys(t *testing.T) {
	schema := &model.FormSchema{
		Title:       "T",
		Description: strPtr(""),
		Sections: []model.Section{{
			Title: "A",
			Fields: []model.Field{{
				Label: "Pick",
				Type:  types.FieldTypeRadio,
				Options: []model.Option{
					{Text: "Yes", GoToAction: "SUBMIT_FORM"},
					{Label: "No", GoToSectionID: "Follow Up"},
					{Label: "Later", GoTo: "NEXT_SECTION", GoToAction: "SUBMIT_FORM"},
				},
			}},
		}},
	}

	got := model.Normalize(schema)
	opts := got.Sections[0].Fields[0].Options

	gt.Value(t, opts[0]).Equal(model.Option{Label: "Yes", GoTo: "SUBMIT_FORM"})
	gt.Value(t, opts[1]).Equal(model.Option{Label: "No", GoTo: "Follow Up"})
	// an explicit goTo wins over legacy keys
	gt.Value(t, opts[2]).Equal(model.Option{Label: "Later", GoTo: "NEXT_SECTION"})
}

func TestNormalize_Idempotent(t *testing.T) {
	schema := &model.FormSchema{
		Title:       "T",
		Description: strPtr("d"),
		Fields: []model.Field{
			{
				Label: "Pick",
				Type:  types.FieldTypeRadio,
				Options: []model.Option{
					{Text: "Yes", GoToSectionID: "B"},
					{Label: "No"},
				},
			},
		},
	}

	once := model.Normalize(schema)
	twice := model.Normalize(once)

	gt.Value(t, twice).Equal(once)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	schema := &model.FormSchema{
		Title:  "T",
		Fields: []model.Field{{Label: "Q", Type: types.FieldTypeText}},
	}

	_ = model.Normalize(schema)

	gt.Array(t, schema.Fields).Length(1)
	gt.Array(t, schema.Sections).Length(0)
}
