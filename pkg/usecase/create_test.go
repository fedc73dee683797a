package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"golang.org/x/oauth2"
	"google.golang.org/api/forms/v1"

	"github.com/formloom/formloom/pkg/domain/model"
	"github.com/formloom/formloom/pkg/domain/types"
	"github.com/formloom/formloom/pkg/service/gforms"
	"github.com/formloom/formloom/pkg/usecase"
)

type mockPlatform struct {
	createForm func(ctx context.Context, title string) (*forms.Form, error)
	applyBatch func(ctx context.Context, formID types.FormID, reqs []*forms.Request) error
	getForm    func(ctx context.Context, formID types.FormID) (*forms.Form, error)

	applyCalls [][]*forms.Request
	getCalls   int
}

func (m *mockPlatform) CreateForm(ctx context.Context, title string) (*forms.Form, error) {
	return m.createForm(ctx, title)
}

func (m *mockPlatform) ApplyBatch(ctx context.Context, formID types.FormID, reqs []*forms.Request) error {
	m.applyCalls = append(m.applyCalls, reqs)
	return m.applyBatch(ctx, formID, reqs)
}

func (m *mockPlatform) GetForm(ctx context.Context, formID types.FormID) (*forms.Form, error) {
	m.getCalls++
	return m.getForm(ctx, formID)
}

func platformFactory(m *mockPlatform) usecase.PlatformFactory {
	return func(ctx context.Context, ts oauth2.TokenSource) (gforms.Service, error) {
		return m, nil
	}
}

func strPtr(s string) *string {
	return &s
}

func branchingSchema() *model.FormSchema {
	return &model.FormSchema{
		Title:       "Survey",
		Description: strPtr("d"),
		Sections: []model.Section{
			{
				Title: "A",
				Fields: []model.Field{{
					Label: "Go?",
					Type:  types.FieldTypeRadio,
					Options: []model.Option{
						{Label: "Yes", GoTo: "B"},
						{Label: "No", GoTo: "SUBMIT_FORM"},
					},
				}},
			},
			{
				Title:  "B",
				Fields: []model.Field{{Label: "Name", Type: types.FieldTypeText}},
			},
		},
	}
}

func materializedForm() *forms.Form {
	return &forms.Form{
		FormId:       "form-1",
		ResponderUri: "https://docs.google.com/forms/d/e/form-1/viewform",
		Items: []*forms.Item{
			{ItemId: "q1", Title: "Go?", QuestionItem: &forms.QuestionItem{Question: &forms.Question{}}},
			{ItemId: "s2", Title: "B", PageBreakItem: &forms.PageBreakItem{}},
			{ItemId: "q2", Title: "Name", QuestionItem: &forms.QuestionItem{Question: &forms.Question{}}},
		},
	}
}

func staticToken() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
}

func TestCreateForm(t *testing.T) {
	platform := &mockPlatform{
		createForm: func(ctx context.Context, title string) (*forms.Form, error) {
			gt.Value(t, title).Equal("Survey")
			return &forms.Form{FormId: "form-1"}, nil
		},
		applyBatch: func(ctx context.Context, formID types.FormID, reqs []*forms.Request) error {
			gt.Value(t, formID).Equal(types.FormID("form-1"))
			return nil
		},
		getForm: func(ctx context.Context, formID types.FormID) (*forms.Form, error) {
			return materializedForm(), nil
		},
	}

	uc := usecase.New(usecase.WithPlatformFactory(platformFactory(platform)))
	created := gt.R1(uc.CreateForm(context.Background(), branchingSchema(), staticToken())).NoError(t)

	gt.Value(t, created.FormID).Equal(types.FormID("form-1"))
	gt.Value(t, created.ResponderURI).Equal("https://docs.google.com/forms/d/e/form-1/viewform")

	// one structural batch, one navigation batch, two fetches
	gt.Array(t, platform.applyCalls).Length(2).Required()
	gt.Number(t, platform.getCalls).Equal(2)

	structural := platform.applyCalls[0]
	gt.Value(t, structural[0].UpdateFormInfo).NotNil()
	gt.Value(t, structural[1].CreateItem).NotNil()

	navigation := platform.applyCalls[1]
	gt.Array(t, navigation).Length(1).Required()
	upd := navigation[0].UpdateItem
	gt.Value(t, upd).NotNil().Required()
	gt.Value(t, upd.Item.ItemId).Equal("q1")
	gt.Value(t, upd.Item.QuestionItem.Question.ChoiceQuestion.Options[0].GoToSectionId).Equal("s2")
}

func TestCreateForm_ValidationFailureNeverReachesPlatform(t *testing.T) {
	platform := &mockPlatform{
		createForm: func(ctx context.Context, title string) (*forms.Form, error) {
			t.Fatal("platform must not be called")
			return nil, nil
		},
	}

	schema := branchingSchema()
	schema.Title = ""

	uc := usecase.New(usecase.WithPlatformFactory(platformFactory(platform)))
	_, err := uc.CreateForm(context.Background(), schema, staticToken())

	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrSchemaValidation)).True()
	gt.Number(t, platform.getCalls).Equal(0)
}

func TestCreateForm_NilSchema(t *testing.T) {
	uc := usecase.New()
	_, err := uc.CreateForm(context.Background(), nil, staticToken())

	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrSchemaValidation)).True()
}

func TestCreateForm_MissingFormID(t *testing.T) {
	platform := &mockPlatform{
		createForm: func(ctx context.Context, title string) (*forms.Form, error) {
			return &forms.Form{}, nil
		},
	}

	uc := usecase.New(usecase.WithPlatformFactory(platformFactory(platform)))
	_, err := uc.CreateForm(context.Background(), branchingSchema(), staticToken())

	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrNoFormID)).True()
	gt.Array(t, platform.applyCalls).Length(0)
}

func TestCreateForm_StructuralFailureIsNotNavigationUnresolved(t *testing.T) {
	platform := &mockPlatform{
		createForm: func(ctx context.Context, title string) (*forms.Form, error) {
			return &forms.Form{FormId: "form-1"}, nil
		},
		applyBatch: func(ctx context.Context, formID types.FormID, reqs []*forms.Request) error {
			return gforms.ErrPlatform
		},
	}

	uc := usecase.New(usecase.WithPlatformFactory(platformFactory(platform)))
	_, err := uc.CreateForm(context.Background(), branchingSchema(), staticToken())

	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, gforms.ErrPlatform)).True()
	gt.Bool(t, usecase.IsNavigationUnresolved(err)).False()
}

func TestCreateForm_NavigationBatchFailure(t *testing.T) {
	platform := &mockPlatform{
		createForm: func(ctx context.Context, title string) (*forms.Form, error) {
			return &forms.Form{FormId: "form-1"}, nil
		},
		getForm: func(ctx context.Context, formID types.FormID) (*forms.Form, error) {
			return materializedForm(), nil
		},
	}
	platform.applyBatch = func(ctx context.Context, formID types.FormID, reqs []*forms.Request) error {
		// first call is the structural batch, second the navigation batch
		if len(platform.applyCalls) > 1 {
			return gforms.ErrPlatform
		}
		return nil
	}

	uc := usecase.New(usecase.WithPlatformFactory(platformFactory(platform)))
	_, err := uc.CreateForm(context.Background(), branchingSchema(), staticToken())

	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, gforms.ErrPlatform)).True()
	gt.Bool(t, usecase.IsNavigationUnresolved(err)).True()
}

func TestCreateForm_MaterializedFetchFailure(t *testing.T) {
	platform := &mockPlatform{
		createForm: func(ctx context.Context, title string) (*forms.Form, error) {
			return &forms.Form{FormId: "form-1"}, nil
		},
		applyBatch: func(ctx context.Context, formID types.FormID, reqs []*forms.Request) error {
			return nil
		},
		getForm: func(ctx context.Context, formID types.FormID) (*forms.Form, error) {
			return nil, gforms.ErrPlatform
		},
	}

	uc := usecase.New(usecase.WithPlatformFactory(platformFactory(platform)))
	_, err := uc.CreateForm(context.Background(), branchingSchema(), staticToken())

	gt.Error(t, err)
	gt.Bool(t, usecase.IsNavigationUnresolved(err)).True()
}
