package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/mocks"
	"gestman-backend/internal/notify"
	"gestman-backend/internal/schedule"
	"gestman-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FormServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockFormRepositoryInterface
	alerts   *mocks.MockAlertRepositoryInterface
	assets   *mocks.MockAssetRepositoryInterface
	notifier *mocks.MockAlertNotifier
	service  *service.FormService
	template *models.FormTemplate
}

func (suite *FormServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockFormRepositoryInterface(suite.ctrl)
	suite.alerts = mocks.NewMockAlertRepositoryInterface(suite.ctrl)
	suite.assets = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockAlertNotifier(suite.ctrl)
	suite.service = service.NewFormService(
		suite.repo, suite.alerts, suite.assets, suite.notifier,
		schedule.FixedClock{T: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		validator.New(),
	)

	id := uuid.New()
	suite.template = &models.FormTemplate{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Verifica estintori",
		IsActive:  true,
		Fields: []models.FormField{
			formField(id, service.FieldKeyInterventionDate, "Intervention date", models.FieldDate, true, models.FieldOptions{}),
			formField(id, service.FieldKeyOperator, "Operator", models.FieldText, true, models.FieldOptions{}),
			formField(id, "stato", "Stato", models.FieldSelect, true, models.FieldOptions{Choices: []models.FieldChoice{
				{Value: "ok", Label: "Conforme"},
				{Value: "danneggiato", Label: "Danneggiato", GeneratesAlert: true},
			}}),
			formField(id, "sigillo", "Sigillo integro", models.FieldCheckbox, false, models.FieldOptions{}),
			formField(id, "notes", "Note", models.FieldTextarea, false, models.FieldOptions{GeneratesAlert: true}),
		},
	}
}

func (suite *FormServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func formField(templateID uuid.UUID, key, label string, typ models.FieldType, required bool, opts models.FieldOptions) models.FormField {
	return models.FormField{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TemplateID: templateID,
		Key:        key,
		Label:      label,
		Type:       typ,
		Required:   required,
		Options:    datatypes.NewJSONType(opts),
	}
}

func (suite *FormServiceTestSuite) submit(data map[string]interface{}) (*service.SubmissionResponse, error) {
	return suite.service.Submit(context.Background(), &service.SubmitFormRequest{
		TemplateID:       suite.template.ID,
		LocationNumber:   "001",
		AssetID:          "EST-001",
		Operator:         "mrossi",
		InterventionDate: "2025-03-10",
		Data:             data,
	})
}

func (suite *FormServiceTestSuite) TestCheckConformity() {
	testCases := []struct {
		name   string
		data   map[string]interface{}
		issues int
	}{
		{name: "all conform", data: map[string]interface{}{"stato": "ok", "sigillo": true}, issues: 0},
		{name: "alerting choice", data: map[string]interface{}{"stato": "danneggiato"}, issues: 1},
		{name: "negative checkbox", data: map[string]interface{}{"stato": "ok", "sigillo": "No"}, issues: 1},
		{name: "boolean false checkbox", data: map[string]interface{}{"sigillo": false}, issues: 1},
		{name: "alerting note", data: map[string]interface{}{"notes": "manca cartello"}, issues: 1},
		{name: "blank note", data: map[string]interface{}{"notes": "   "}, issues: 0},
		{name: "everything", data: map[string]interface{}{"stato": "danneggiato", "sigillo": "0", "notes": "x"}, issues: 3},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			issues := service.CheckConformity(suite.template.Fields, tc.data)
			suite.Len(issues, tc.issues)
		})
	}
}

func (suite *FormServiceTestSuite) TestSubmitConformStoresWithoutAlert() {
	suite.repo.EXPECT().GetTemplate(suite.template.ID).Return(suite.template, nil)
	suite.repo.EXPECT().CreateSubmission(gomock.Any()).DoAndReturn(func(sub *models.FormSubmission) error {
		assert.Equal(suite.T(), "2025-03-10", sub.Data[service.FieldKeyInterventionDate])
		assert.Equal(suite.T(), "mrossi", sub.Data[service.FieldKeyOperator])
		return nil
	})

	resp, err := suite.submit(map[string]interface{}{"stato": "ok"})

	suite.Require().NoError(err)
	suite.Equal(0, resp.AlertsGenerated)
	suite.Nil(resp.AlertID)
}

func (suite *FormServiceTestSuite) TestSubmitNonConformRaisesSingleAlert() {
	suite.repo.EXPECT().GetTemplate(suite.template.ID).Return(suite.template, nil)
	suite.repo.EXPECT().CreateSubmission(gomock.Any()).Return(nil)
	suite.alerts.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Alert) error {
		assert.Equal(suite.T(), models.AlertCategoryNonConformity, a.Category)
		assert.Contains(suite.T(), a.Description, "Detected 3 non-conformities")
		assert.Contains(suite.T(), a.Description, "• Danneggiato")
		assert.Equal(suite.T(), "estintore scarico", a.Notes)
		a.ID = uuid.New()
		return nil
	})
	suite.assets.EXPECT().GetByCompanyID("EST-001").Return(&models.Asset{Type: "Estintore"}, nil)
	suite.notifier.EXPECT().FanOut(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg notify.Message) *service.FanOutResult {
			assert.Equal(suite.T(), "Dynamic form non-conformity estintore: EST-001", msg.Title)
			assert.Equal(suite.T(), "Danneggiato, Sigillo integro", msg.Description)
			return &service.FanOutResult{}
		})

	resp, err := suite.submit(map[string]interface{}{"stato": "danneggiato", "sigillo": "no", "notes": "estintore scarico"})

	suite.Require().NoError(err)
	suite.Equal(3, resp.AlertsGenerated)
	suite.NotNil(resp.AlertID)
}

func (suite *FormServiceTestSuite) TestSubmitKeepsSubmissionWhenAlertFails() {
	suite.repo.EXPECT().GetTemplate(suite.template.ID).Return(suite.template, nil)
	suite.repo.EXPECT().CreateSubmission(gomock.Any()).Return(nil)
	suite.alerts.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	resp, err := suite.submit(map[string]interface{}{"stato": "danneggiato"})

	suite.Require().NoError(err)
	suite.Equal(1, resp.AlertsGenerated)
	suite.Nil(resp.AlertID)
}

func (suite *FormServiceTestSuite) TestSubmitMissingRequiredField() {
	suite.repo.EXPECT().GetTemplate(suite.template.ID).Return(suite.template, nil)

	_, err := suite.submit(map[string]interface{}{"sigillo": true})

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal("stato", vErr.Field)
}

func (suite *FormServiceTestSuite) TestSubmitUnknownTemplate() {
	suite.repo.EXPECT().GetTemplate(suite.template.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.submit(nil)

	suite.ErrorIs(err, apperrors.ErrFormTemplateNotFound)
}

func (suite *FormServiceTestSuite) TestCreateTemplateAddsStandardFields() {
	suite.repo.EXPECT().GetTemplateByName("Verifica idranti").Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().CreateTemplate(gomock.Any()).Return(nil)

	template, err := suite.service.CreateTemplate(&service.CreateFormTemplateRequest{Name: " Verifica idranti "})

	suite.Require().NoError(err)
	suite.Require().Len(template.Fields, 2)
	suite.Equal(service.FieldKeyInterventionDate, template.Fields[0].Key)
	suite.Equal(service.FieldKeyOperator, template.Fields[1].Key)
}

func (suite *FormServiceTestSuite) TestStandardFieldsAreProtected() {
	operator := suite.template.Fields[1]
	suite.repo.EXPECT().GetField(operator.ID).Return(&operator, nil).Times(2)

	err := suite.service.DeleteField(operator.ID)
	var vErr *apperrors.ValidationError
	suite.True(errors.As(err, &vErr))

	_, err = suite.service.UpdateField(operator.ID, &service.FormFieldRequest{Key: "tecnico", Label: "Tecnico", Type: models.FieldText})
	suite.True(errors.As(err, &vErr))
}

func (suite *FormServiceTestSuite) TestAddFieldRejectsDuplicateKey() {
	suite.repo.EXPECT().GetTemplate(suite.template.ID).Return(suite.template, nil)

	_, err := suite.service.AddField(suite.template.ID, &service.FormFieldRequest{Key: "sigillo", Label: "Sigillo", Type: models.FieldCheckbox})

	suite.ErrorIs(err, apperrors.ErrFormFieldExists)
}

func (suite *FormServiceTestSuite) TestAddFieldAppendsAfterLastField() {
	for i := range suite.template.Fields {
		suite.template.Fields[i].DisplayOrder = i + 1
	}
	suite.repo.EXPECT().GetTemplate(suite.template.ID).Return(suite.template, nil)
	suite.repo.EXPECT().CreateField(gomock.Any()).Return(nil)

	field, err := suite.service.AddField(suite.template.ID, &service.FormFieldRequest{Key: "pressione", Label: "Pressione", Type: models.FieldNumber})

	suite.Require().NoError(err)
	suite.Equal(6, field.DisplayOrder)
}

func (suite *FormServiceTestSuite) TestSelectFieldNeedsChoices() {
	_, err := suite.service.AddField(suite.template.ID, &service.FormFieldRequest{Key: "esito", Label: "Esito", Type: models.FieldSelect})

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal("options", vErr.Field)
}

func TestFormServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FormServiceTestSuite))
}
