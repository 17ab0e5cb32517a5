package targeting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/pkg/utils"
)

var (
	ErrAgentNotFound   = errors.New("vendedor não encontrado")
	ErrInvalidTarget   = errors.New("meta inválida: informe valores maiores ou iguais a zero")
	ErrDuplicateTarget = repository.ErrDuplicateTarget
)

type TargetService interface {
	CreateTarget(target *domain.SalesTarget) (*domain.SalesTarget, error)
	GetCurrentTarget(salesPersonID int) (*domain.SalesTarget, error)
	ListTargetsByMonth(month time.Time) ([]*domain.SalesTarget, error)
}

type Service struct {
	targetRepo repository.TargetRepository
	userRepo   repository.UserRepository
}

func NewService(
	targetRepo repository.TargetRepository,
	userRepo repository.UserRepository,
) TargetService {
	return &Service{
		targetRepo: targetRepo,
		userRepo:   userRepo,
	}
}

// CreateTarget registra a meta mensal de um vendedor. O mês informado é
// normalizado para o primeiro dia, então qualquer data dentro do mês serve.
func (s *Service) CreateTarget(target *domain.SalesTarget) (*domain.SalesTarget, error) {
	if target.SalesPersonID == 0 || target.Month.IsZero() {
		return nil, ErrInvalidTarget
	}

	if target.TargetAmount < 0 || target.TargetCount < 0 || target.TargetVisits < 0 {
		return nil, ErrInvalidTarget
	}

	user, err := s.userRepo.GetUserByID(target.SalesPersonID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o vendedor da meta")
	}

	if user == nil {
		return nil, ErrAgentNotFound
	}

	target.Month = utils.MonthStart(target.Month)

	saved, err := s.targetRepo.CreateTarget(target)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTarget) {
			return nil, ErrDuplicateTarget
		}
		return nil, errors.Wrap(err, "erro ao salvar a meta mensal")
	}

	return saved, nil
}

// GetCurrentTarget retorna a meta do mês corrente do vendedor, ou nil
// quando nenhuma meta foi cadastrada para o mês.
func (s *Service) GetCurrentTarget(salesPersonID int) (*domain.SalesTarget, error) {
	month := utils.MonthStart(time.Now())

	target, err := s.targetRepo.GetTarget(salesPersonID, month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a meta do mês corrente")
	}

	return target, nil
}

func (s *Service) ListTargetsByMonth(month time.Time) ([]*domain.SalesTarget, error) {
	if month.IsZero() {
		month = time.Now()
	}

	targets, err := s.targetRepo.ListTargetsByMonth(utils.MonthStart(month))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar as metas do mês")
	}

	return targets, nil
}
