// Package visiting registra visitas porta a porta e promove visitas
// qualificadas a prospects
package visiting

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository"
	"github.com/zakcom/sales-tracker-api/internal/domain"
)

var (
	ErrInvalidOutcome = errors.New("resultado de visita inválido")
	ErrMissingFields  = errors.New("local e feedback da visita são obrigatórios")
)

// ProspectDetails são os dados opcionais da pessoa visitada. Nome e
// telefone juntos são o mínimo para criar um prospect.
type ProspectDetails struct {
	FullName           string `json:"full_name"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	Location           string `json:"location"`
	PreferredPackageID *int   `json:"preferred_package_id"`
}

// LogVisitResult informa o que foi persistido. A visita em si está sempre
// salva; Warning indica que a criação do prospect falhou (sucesso parcial).
type LogVisitResult struct {
	Visit           *domain.Visit    `json:"visit"`
	Prospect        *domain.Prospect `json:"prospect,omitempty"`
	ProspectCreated bool             `json:"prospect_created"`
	Warning         string           `json:"warning,omitempty"`
}

type VisitService interface {
	LogVisit(visit *domain.Visit, details ProspectDetails) (*LogVisitResult, error)
	ListVisits(filter domain.VisitFilter) ([]*domain.Visit, error)
	ListProspects(filter domain.ProspectFilter) ([]*domain.Prospect, error)
}

type Service struct {
	visitRepo    repository.VisitRepository
	prospectRepo repository.ProspectRepository
}

func NewService(visitRepo repository.VisitRepository, prospectRepo repository.ProspectRepository) VisitService {
	return &Service{
		visitRepo:    visitRepo,
		prospectRepo: prospectRepo,
	}
}

// LogVisit grava a visita em duas fases. Fase 1: a visita é salva
// incondicionalmente; se falhar, a operação inteira falha. Fase 2: se o
// resultado qualifica e o vendedor informou nome e telefone, cria o
// prospect e preenche o vínculo na visita. A fase 2 é melhor esforço:
// falha vira aviso no resultado, nunca desfaz a visita já salva.
func (s *Service) LogVisit(visit *domain.Visit, details ProspectDetails) (*LogVisitResult, error) {
	if !visit.Outcome.Valid() {
		return nil, ErrInvalidOutcome
	}

	if visit.Location == "" || visit.Feedback == "" {
		return nil, ErrMissingFields
	}

	if visit.VisitDate.IsZero() {
		visit.VisitDate = time.Now()
	}

	saved, err := s.visitRepo.CreateVisit(visit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar visita")
	}

	result := &LogVisitResult{Visit: saved}

	name := strings.TrimSpace(details.FullName)
	phone := strings.TrimSpace(details.Phone)

	if !saved.Outcome.QualifiesForProspect() || name == "" || phone == "" {
		return result, nil
	}

	prospect, err := s.createProspect(saved, details, name, phone)
	if err != nil {
		// A visita já está salva; apenas avisar sobre o prospect
		logrus.WithError(err).WithField("visit_id", saved.ID).
			Warn("Visita salva, mas a criação do prospect falhou")
		result.Warning = "visita salva, mas a criação do prospect falhou: " + err.Error()
		return result, nil
	}

	if err := s.visitRepo.LinkProspect(saved.ID, prospect.ID); err != nil {
		logrus.WithError(err).WithField("visit_id", saved.ID).
			Warn("Prospect criado, mas o vínculo com a visita falhou")
		result.Warning = "prospect criado, mas o vínculo com a visita falhou: " + err.Error()
	} else {
		saved.ProspectID = &prospect.ID
	}

	result.Prospect = prospect
	result.ProspectCreated = true
	return result, nil
}

func (s *Service) createProspect(visit *domain.Visit, details ProspectDetails, name, phone string) (*domain.Prospect, error) {
	address := strings.TrimSpace(details.Address)
	if address == "" {
		address = "Not provided"
	}

	location := strings.TrimSpace(details.Location)
	if location == "" {
		location = visit.Location
	}

	var email *string
	if e := strings.TrimSpace(details.Email); e != "" {
		email = &e
	}

	prospect := &domain.Prospect{
		FullName:           name,
		Phone:              phone,
		Email:              email,
		Address:            address,
		Location:           location,
		InterestLevel:      domain.InterestLevelForOutcome(visit.Outcome),
		PreferredPackageID: details.PreferredPackageID,
		AddedByID:          visit.SalesPersonID,
	}

	return s.prospectRepo.CreateProspect(prospect)
}

func (s *Service) ListVisits(filter domain.VisitFilter) ([]*domain.Visit, error) {
	return s.visitRepo.ListVisits(filter)
}

func (s *Service) ListProspects(filter domain.ProspectFilter) ([]*domain.Prospect, error) {
	return s.prospectRepo.ListProspects(filter)
}
