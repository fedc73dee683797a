package generator_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/formloom/formloom/pkg/service/generator"
)

func TestParseSchema(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "plain JSON",
			text: `{"title":"Survey","description":"","fields":[{"label":"Name","type":"text"}]}`,
		},
		{
			name: "fenced JSON",
			text: "Here is the form:\n```json\n{\"title\":\"Survey\",\"description\":\"\",\"fields\":[{\"label\":\"Name\",\"type\":\"text\"}]}\n```\nLet me know if you need changes.",
		},
		{
			name: "prose around bare JSON",
			text: "Sure! {\"title\":\"Survey\",\"description\":\"\",\"fields\":[{\"label\":\"Name\",\"type\":\"text\"}]} Hope this helps.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := gt.R1(generator.ParseSchema(tt.text)).NoError(t)
			gt.Value(t, schema.Title).Equal("Survey")
			gt.Array(t, schema.Fields).Length(1)
			gt.Value(t, schema.Fields[0].Label).Equal("Name")
		})
	}
}

func TestParseSchema_SectionedOutput(t *testing.T) {
	text := "```json\n" + `{
  "title": "Survey",
  "description": "d",
  "sections": [
    {
      "title": "A",
      "fields": [
        {
          "label": "Go?",
          "type": "radio",
          "options": [
            {"label": "Yes", "goTo": "B"},
            {"label": "No", "goTo": "SUBMIT_FORM"}
          ]
        }
      ]
    },
    {"title": "B", "fields": [{"label": "Name", "type": "text"}]}
  ]
}` + "\n```"

	schema := gt.R1(generator.ParseSchema(text)).NoError(t)
	gt.Array(t, schema.Sections).Length(2).Required()
	gt.Value(t, schema.Sections[0].Fields[0].Options[0].GoTo).Equal("B")
}

func TestParseSchema_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "no JSON at all", text: "I could not generate a form."},
		{name: "unbalanced braces", text: "{"},
		{name: "broken JSON", text: `{"title": "Survey",}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generator.ParseSchema(tt.text)
			gt.Error(t, err)
		})
	}
}
