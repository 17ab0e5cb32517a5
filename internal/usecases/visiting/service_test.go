package visiting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newVisit(outcome domain.VisitOutcome) *domain.Visit {
	return &domain.Visit{
		SalesPersonID: 7,
		VisitDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		VisitTime:     "10:30:00",
		Location:      "Bairro Central, Prédio 12",
		Outcome:       outcome,
		Feedback:      "Morador pediu detalhes dos planos",
	}
}

func savedVisit(visit *domain.Visit, id int) *domain.Visit {
	saved := *visit
	saved.ID = id
	return &saved
}

func TestService_LogVisit(t *testing.T) {
	tests := []struct {
		name     string
		visit    *domain.Visit
		details  ProspectDetails
		setup    func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit)
		wantErr  error
		validate func(t *testing.T, result *LogVisitResult)
	}{
		{
			name:  "Visita interessada com contato completo - cria e vincula prospect",
			visit: newVisit(domain.OutcomeInterested),
			details: ProspectDetails{
				FullName: "Joana Cumbe",
				Phone:    "+258841234567",
				Address:  "Av. 24 de Julho, 100",
			},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
				visitRepo.EXPECT().CreateVisit(visit).Return(savedVisit(visit, 10), nil)
				prospectRepo.EXPECT().CreateProspect(gomock.Any()).DoAndReturn(
					func(p *domain.Prospect) (*domain.Prospect, error) {
						assert.Equal(t, "Joana Cumbe", p.FullName)
						assert.Equal(t, "+258841234567", p.Phone)
						assert.Equal(t, domain.InterestInterested, p.InterestLevel)
						assert.Equal(t, 7, p.AddedByID)
						created := *p
						created.ID = 77
						return &created, nil
					})
				visitRepo.EXPECT().LinkProspect(10, 77).Return(nil)
			},
			validate: func(t *testing.T, result *LogVisitResult) {
				assert.True(t, result.ProspectCreated)
				assert.Empty(t, result.Warning)
				assert.NotNil(t, result.Visit.ProspectID)
				assert.Equal(t, 77, *result.Visit.ProspectID)
			},
		},
		{
			name:  "Venda fechada - prospect nasce convertido",
			visit: newVisit(domain.OutcomeClosedSale),
			details: ProspectDetails{
				FullName: "Mário Langa",
				Phone:    "+258820000001",
			},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
				visitRepo.EXPECT().CreateVisit(visit).Return(savedVisit(visit, 11), nil)
				prospectRepo.EXPECT().CreateProspect(gomock.Any()).DoAndReturn(
					func(p *domain.Prospect) (*domain.Prospect, error) {
						assert.Equal(t, domain.InterestConverted, p.InterestLevel)
						// Endereço não informado recebe o marcador padrão e a
						// localização herda a da visita
						assert.Equal(t, "Not provided", p.Address)
						assert.Equal(t, visit.Location, p.Location)
						created := *p
						created.ID = 78
						return &created, nil
					})
				visitRepo.EXPECT().LinkProspect(11, 78).Return(nil)
			},
			validate: func(t *testing.T, result *LogVisitResult) {
				assert.True(t, result.ProspectCreated)
				assert.Equal(t, domain.InterestConverted, result.Prospect.InterestLevel)
			},
		},
		{
			name:  "Retornar depois - prospect muito interessado",
			visit: newVisit(domain.OutcomeFollowUp),
			details: ProspectDetails{
				FullName: "Ana Sitoe",
				Phone:    "+258870000002",
			},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
				visitRepo.EXPECT().CreateVisit(visit).Return(savedVisit(visit, 12), nil)
				prospectRepo.EXPECT().CreateProspect(gomock.Any()).DoAndReturn(
					func(p *domain.Prospect) (*domain.Prospect, error) {
						assert.Equal(t, domain.InterestVeryInterested, p.InterestLevel)
						created := *p
						created.ID = 79
						return &created, nil
					})
				visitRepo.EXPECT().LinkProspect(12, 79).Return(nil)
			},
			validate: func(t *testing.T, result *LogVisitResult) {
				assert.True(t, result.ProspectCreated)
			},
		},
		{
			name:  "Resultado não qualifica - nenhum prospect criado",
			visit: newVisit(domain.OutcomeNotInterested),
			details: ProspectDetails{
				FullName: "Joana Cumbe",
				Phone:    "+258841234567",
			},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
				visitRepo.EXPECT().CreateVisit(visit).Return(savedVisit(visit, 13), nil)
			},
			validate: func(t *testing.T, result *LogVisitResult) {
				assert.False(t, result.ProspectCreated)
				assert.Nil(t, result.Prospect)
			},
		},
		{
			name:    "Sem telefone - visita salva sem prospect",
			visit:   newVisit(domain.OutcomeInterested),
			details: ProspectDetails{FullName: "Joana Cumbe"},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
				visitRepo.EXPECT().CreateVisit(visit).Return(savedVisit(visit, 14), nil)
			},
			validate: func(t *testing.T, result *LogVisitResult) {
				assert.False(t, result.ProspectCreated)
			},
		},
		{
			name:  "Falha ao criar prospect - visita mantida com aviso",
			visit: newVisit(domain.OutcomeInterested),
			details: ProspectDetails{
				FullName: "Joana Cumbe",
				Phone:    "+258841234567",
			},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
				visitRepo.EXPECT().CreateVisit(visit).Return(savedVisit(visit, 15), nil)
				prospectRepo.EXPECT().CreateProspect(gomock.Any()).Return(nil, errors.New("erro de banco"))
			},
			validate: func(t *testing.T, result *LogVisitResult) {
				assert.False(t, result.ProspectCreated)
				assert.NotEmpty(t, result.Warning)
				assert.NotNil(t, result.Visit)
				assert.Equal(t, 15, result.Visit.ID)
			},
		},
		{
			name:  "Falha no vínculo - prospect criado com aviso",
			visit: newVisit(domain.OutcomeInterested),
			details: ProspectDetails{
				FullName: "Joana Cumbe",
				Phone:    "+258841234567",
			},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
				visitRepo.EXPECT().CreateVisit(visit).Return(savedVisit(visit, 16), nil)
				prospectRepo.EXPECT().CreateProspect(gomock.Any()).DoAndReturn(
					func(p *domain.Prospect) (*domain.Prospect, error) {
						created := *p
						created.ID = 80
						return &created, nil
					})
				visitRepo.EXPECT().LinkProspect(16, 80).Return(errors.New("erro de banco"))
			},
			validate: func(t *testing.T, result *LogVisitResult) {
				assert.True(t, result.ProspectCreated)
				assert.NotEmpty(t, result.Warning)
				assert.Nil(t, result.Visit.ProspectID)
			},
		},
		{
			name:    "Resultado fora do conjunto fechado - rejeitado",
			visit:   newVisit(domain.VisitOutcome("maybe_later")),
			details: ProspectDetails{},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
			},
			wantErr: ErrInvalidOutcome,
		},
		{
			name: "Local ausente - rejeitado",
			visit: func() *domain.Visit {
				v := newVisit(domain.OutcomeInterested)
				v.Location = ""
				return v
			}(),
			details: ProspectDetails{},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
			},
			wantErr: ErrMissingFields,
		},
		{
			name:    "Falha ao salvar a visita - operação inteira falha",
			visit:   newVisit(domain.OutcomeInterested),
			details: ProspectDetails{FullName: "Joana Cumbe", Phone: "+258841234567"},
			setup: func(visitRepo *mocks.MockVisitRepository, prospectRepo *mocks.MockProspectRepository, visit *domain.Visit) {
				visitRepo.EXPECT().CreateVisit(visit).Return(nil, errors.New("erro de banco"))
			},
			wantErr: errors.New("erro ao salvar visita: erro de banco"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			visitRepo := mocks.NewMockVisitRepository(ctrl)
			prospectRepo := mocks.NewMockProspectRepository(ctrl)
			tt.setup(visitRepo, prospectRepo, tt.visit)

			service := NewService(visitRepo, prospectRepo)
			result, err := service.LogVisit(tt.visit, tt.details)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, result)
			tt.validate(t, result)
		})
	}
}

func TestService_LogVisit_DataPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	visitRepo := mocks.NewMockVisitRepository(ctrl)
	prospectRepo := mocks.NewMockProspectRepository(ctrl)

	visit := newVisit(domain.OutcomeNotHome)
	visit.VisitDate = time.Time{}

	visitRepo.EXPECT().CreateVisit(visit).DoAndReturn(
		func(v *domain.Visit) (*domain.Visit, error) {
			// Sem data informada, a visita recebe a data corrente
			assert.False(t, v.VisitDate.IsZero())
			return savedVisit(v, 20), nil
		})

	service := NewService(visitRepo, prospectRepo)
	result, err := service.LogVisit(visit, ProspectDetails{})

	assert.NoError(t, err)
	assert.False(t, result.ProspectCreated)
}
