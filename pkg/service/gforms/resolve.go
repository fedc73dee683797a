package gforms

import (
	"github.com/formloom/formloom/pkg/domain/model"
	"github.com/formloom/formloom/pkg/domain/types"
	"google.golang.org/api/forms/v1"
)

// navigationUpdateMask replaces exactly the choice sub-object of a question;
// the platform rejects partial updates without an explicit mask.
const navigationUpdateMask = "questionItem.question.choiceQuestion"

type itemRef struct {
	id    types.ItemID
	index int64
}

// Resolve is the second compilation pass. It rewrites symbolic goTo
// section-title references into platform-assigned item IDs, which exist only
// after the structural batch produced by Compile has been applied and the
// materialized item list has been fetched.
//
// For every radio/select field with at least one navigating option it emits
// one updateItem request replacing the full option list: built-in actions
// pass through, section titles resolve through the header map, and any
// option left without navigation defaults to NEXT_SECTION so that partial
// navigation never reaches the wire. A title that resolves to no created
// header also defaults to NEXT_SECTION; an already-resolved item ID passes
// through unchanged, which makes resolution idempotent.
func Resolve(s *model.FormSchema, items []*forms.Item) []*forms.Request {
	sections := make(map[string]types.ItemID)
	headerIDs := make(map[types.ItemID]bool)
	questions := make(map[string]itemRef)

	for i, item := range items {
		switch {
		case item.PageBreakItem != nil:
			id := types.ItemID(item.ItemId)
			if _, ok := sections[item.Title]; !ok {
				sections[item.Title] = id
			}
			headerIDs[id] = true
		case item.QuestionItem != nil:
			if _, ok := questions[item.Title]; !ok {
				questions[item.Title] = itemRef{
					id:    types.ItemID(item.ItemId),
					index: int64(i),
				}
			}
		}
	}

	var reqs []*forms.Request
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if !f.Type.AllowsNavigation() || !f.HasNavigation() {
				continue
			}
			ref, ok := questions[f.Label]
			if !ok {
				continue
			}

			reqs = append(reqs, &forms.Request{
				UpdateItem: &forms.UpdateItemRequest{
					Item: &forms.Item{
						ItemId: ref.id.String(),
						Title:  f.Label,
						QuestionItem: &forms.QuestionItem{
							Question: &forms.Question{
								Required: f.Required,
								ChoiceQuestion: &forms.ChoiceQuestion{
									Type:    choiceType(f.Type),
									Options: resolveOptions(f, sections, headerIDs),
								},
							},
						},
					},
					Location:   location(ref.index),
					UpdateMask: navigationUpdateMask,
				},
			})
		}
	}

	return reqs
}

func resolveOptions(f model.Field, sections map[string]types.ItemID, headerIDs map[types.ItemID]bool) []*forms.Option {
	options := make([]*forms.Option, 0, len(f.Options))
	for _, o := range f.Options {
		fo := &forms.Option{Value: o.Display()}

		switch {
		case types.IsBuiltinNavAction(o.GoTo):
			fo.GoToAction = o.GoTo
		case o.GoTo != "":
			if id, ok := sections[o.GoTo]; ok {
				fo.GoToSectionId = id.String()
			} else if headerIDs[types.ItemID(o.GoTo)] {
				// already resolved on a previous pass
				fo.GoToSectionId = o.GoTo
			} else {
				// unknown target, fall back to sequential navigation
				fo.GoToAction = types.NavActionNextSection.String()
			}
		default:
			// all-or-none: every option of a navigating field navigates
			fo.GoToAction = types.NavActionNextSection.String()
		}

		options = append(options, fo)
	}
	return options
}
