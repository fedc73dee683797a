package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/formloom/formloom/pkg/domain/types"
)

func TestFieldType_IsValid(t *testing.T) {
	for _, ft := range types.AllFieldTypes() {
		gt.Bool(t, ft.IsValid()).True()
	}

	gt.Bool(t, types.FieldType("invalid").IsValid()).False()
	gt.Bool(t, types.FieldType("").IsValid()).False()
	gt.Bool(t, types.FieldType("Radio").IsValid()).False()
}

func TestFieldType_IsChoice(t *testing.T) {
	tests := []struct {
		fieldType types.FieldType
		want      bool
	}{
		{types.FieldTypeCheckbox, true},
		{types.FieldTypeRadio, true},
		{types.FieldTypeSelect, true},
		{types.FieldTypeText, false},
		{types.FieldTypeRating, false},
		{types.FieldTypeDate, false},
	}

	for _, tt := range tests {
		t.Run(tt.fieldType.String(), func(t *testing.T) {
			gt.Value(t, tt.fieldType.IsChoice()).Equal(tt.want)
		})
	}
}

func TestFieldType_AllowsNavigation(t *testing.T) {
	tests := []struct {
		fieldType types.FieldType
		want      bool
	}{
		{types.FieldTypeRadio, true},
		{types.FieldTypeSelect, true},
		{types.FieldTypeCheckbox, false},
		{types.FieldTypeText, false},
		{types.FieldTypeTextarea, false},
	}

	for _, tt := range tests {
		t.Run(tt.fieldType.String(), func(t *testing.T) {
			gt.Value(t, tt.fieldType.AllowsNavigation()).Equal(tt.want)
		})
	}
}

func TestIsBuiltinNavAction(t *testing.T) {
	gt.Bool(t, types.IsBuiltinNavAction("NEXT_SECTION")).True()
	gt.Bool(t, types.IsBuiltinNavAction("SUBMIT_FORM")).True()
	gt.Bool(t, types.IsBuiltinNavAction("Section B")).False()
	gt.Bool(t, types.IsBuiltinNavAction("")).False()
}
