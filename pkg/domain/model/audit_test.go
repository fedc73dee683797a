package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/formloom/formloom/pkg/domain/model"
	"github.com/formloom/formloom/pkg/domain/types"
)

func TestAuditNavigation_OK(t *testing.T) {
	schema := validSchema()
	schema.Sections[1].Conditions = []model.Condition{
		{FieldLabel: "Go?", ExpectedValue: "Yes"},
	}

	gt.NoError(t, model.AuditNavigation(schema))
}

func TestAuditNavigation_NoConditionsIsOK(t *testing.T) {
	gt.NoError(t, model.AuditNavigation(validSchema()))
}

func TestAuditNavigation_UnknownControllingField(t *testing.T) {
	schema := validSchema()
	schema.Sections[1].Conditions = []model.Condition{
		{FieldLabel: "No Such Field", ExpectedValue: "Yes"},
	}

	err := model.AuditNavigation(schema)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrNavigationAudit)).True()
}

func TestAuditNavigation_FieldWithoutNavigation(t *testing.T) {
	schema := validSchema()
	schema.Sections[1].Conditions = []model.Condition{
		// "Name" exists but none of its options navigate (it has no options)
		{FieldLabel: "Name", ExpectedValue: "anything"},
	}

	err := model.AuditNavigation(schema)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrNavigationAudit)).True()
}

func TestAuditNavigation_TargetNeedNotBeConditionedSection(t *testing.T) {
	// the condition is satisfied by any navigation on the controlling field,
	// even when no option targets the conditioned section itself
	schema := &model.FormSchema{
		Title:       "T",
		Description: strPtr(""),
		Sections: []model.Section{
			{
				Title: "A",
				Fields: []model.Field{{
					Label: "Pick",
					Type:  types.FieldTypeRadio,
					Options: []model.Option{
						{Label: "Yes", GoTo: "SUBMIT_FORM"},
						{Label: "No", GoTo: "NEXT_SECTION"},
					},
				}},
			},
			{
				Title:      "B",
				Fields:     []model.Field{{Label: "Q", Type: types.FieldTypeText}},
				Conditions: []model.Condition{{FieldLabel: "Pick", ExpectedValue: "Yes"}},
			},
		},
	}

	gt.NoError(t, model.AuditNavigation(schema))
}
