package catalog

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func storedPackage() *domain.InternetPackage {
	return &domain.InternetPackage{
		ID:              3,
		Name:            "Turbo 50",
		Speed:           "50 Mbps",
		MonthlyPrice:    50000,
		InstallationFee: 20000,
		Description:     "Plano para famílias",
		IsActive:        true,
	}
}

func TestService_CreatePackage(t *testing.T) {
	tests := []struct {
		name    string
		pkg     *domain.InternetPackage
		setup   func(packageRepo *mocks.MockPackageRepository)
		wantErr error
	}{
		{
			name: "Pacote novo entra sempre ativo",
			pkg: &domain.InternetPackage{
				Name:         "Max 100",
				Speed:        "100 Mbps",
				MonthlyPrice: 95000,
				IsActive:     false,
			},
			setup: func(packageRepo *mocks.MockPackageRepository) {
				packageRepo.EXPECT().CreatePackage(gomock.Any()).DoAndReturn(
					func(pkg *domain.InternetPackage) (*domain.InternetPackage, error) {
						assert.True(t, pkg.IsActive)
						created := *pkg
						created.ID = 5
						return &created, nil
					})
			},
		},
		{
			name:    "Sem nome - rejeitado",
			pkg:     &domain.InternetPackage{Speed: "100 Mbps", MonthlyPrice: 95000},
			setup:   func(packageRepo *mocks.MockPackageRepository) {},
			wantErr: ErrMissingFields,
		},
		{
			name:    "Preço mensal zero - rejeitado",
			pkg:     &domain.InternetPackage{Name: "Max 100", Speed: "100 Mbps"},
			setup:   func(packageRepo *mocks.MockPackageRepository) {},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			packageRepo := mocks.NewMockPackageRepository(ctrl)
			tt.setup(packageRepo)

			service := NewService(packageRepo)
			saved, err := service.CreatePackage(tt.pkg)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, saved)
		})
	}
}

func TestService_UpdatePackage(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.UpdateInternetPackageRequest
		setup    func(packageRepo *mocks.MockPackageRepository)
		wantErr  error
		validate func(t *testing.T, updated *domain.InternetPackage)
	}{
		{
			name: "Atualização parcial preserva os campos ausentes",
			req: func() *domain.UpdateInternetPackageRequest {
				price := 55000.0
				return &domain.UpdateInternetPackageRequest{ID: 3, MonthlyPrice: &price}
			}(),
			setup: func(packageRepo *mocks.MockPackageRepository) {
				packageRepo.EXPECT().GetPackageByID(3).Return(storedPackage(), nil)
				packageRepo.EXPECT().UpdatePackage(gomock.Any()).DoAndReturn(
					func(pkg *domain.InternetPackage) error {
						assert.Equal(t, 55000.0, pkg.MonthlyPrice)
						assert.Equal(t, "Turbo 50", pkg.Name)
						assert.Equal(t, "50 Mbps", pkg.Speed)
						return nil
					})
			},
			validate: func(t *testing.T, updated *domain.InternetPackage) {
				assert.Equal(t, 55000.0, updated.MonthlyPrice)
			},
		},
		{
			name: "Inativação via update",
			req: func() *domain.UpdateInternetPackageRequest {
				active := false
				return &domain.UpdateInternetPackageRequest{ID: 3, IsActive: &active}
			}(),
			setup: func(packageRepo *mocks.MockPackageRepository) {
				packageRepo.EXPECT().GetPackageByID(3).Return(storedPackage(), nil)
				packageRepo.EXPECT().UpdatePackage(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, updated *domain.InternetPackage) {
				assert.False(t, updated.IsActive)
			},
		},
		{
			name: "Pacote inexistente",
			req:  &domain.UpdateInternetPackageRequest{ID: 99},
			setup: func(packageRepo *mocks.MockPackageRepository) {
				packageRepo.EXPECT().GetPackageByID(99).Return(nil, nil)
			},
			wantErr: ErrPackageNotFound,
		},
		{
			name: "Update não pode esvaziar campos obrigatórios",
			req: func() *domain.UpdateInternetPackageRequest {
				empty := ""
				return &domain.UpdateInternetPackageRequest{ID: 3, Name: &empty}
			}(),
			setup: func(packageRepo *mocks.MockPackageRepository) {
				packageRepo.EXPECT().GetPackageByID(3).Return(storedPackage(), nil)
			},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			packageRepo := mocks.NewMockPackageRepository(ctrl)
			tt.setup(packageRepo)

			service := NewService(packageRepo)
			updated, err := service.UpdatePackage(tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updated)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, updated)
			tt.validate(t, updated)
		})
	}
}

func TestService_DeletePackage(t *testing.T) {
	tests := []struct {
		name      string
		packageID int
		setup     func(packageRepo *mocks.MockPackageRepository)
		wantErr   error
	}{
		{
			name:      "Remoção de pacote sem vendas",
			packageID: 3,
			setup: func(packageRepo *mocks.MockPackageRepository) {
				packageRepo.EXPECT().GetPackageByID(3).Return(storedPackage(), nil)
				packageRepo.EXPECT().DeletePackage(3).Return(nil)
			},
		},
		{
			name:      "Pacote com vendas associadas - rejeitado",
			packageID: 3,
			setup: func(packageRepo *mocks.MockPackageRepository) {
				packageRepo.EXPECT().GetPackageByID(3).Return(storedPackage(), nil)
				packageRepo.EXPECT().DeletePackage(3).Return(repository.ErrPackageInUse)
			},
			wantErr: ErrPackageInUse,
		},
		{
			name:      "Pacote inexistente",
			packageID: 99,
			setup: func(packageRepo *mocks.MockPackageRepository) {
				packageRepo.EXPECT().GetPackageByID(99).Return(nil, nil)
			},
			wantErr: ErrPackageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			packageRepo := mocks.NewMockPackageRepository(ctrl)
			tt.setup(packageRepo)

			service := NewService(packageRepo)
			err := service.DeletePackage(tt.packageID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_GetPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockPackageRepository(ctrl)
	packageRepo.EXPECT().GetPackageByID(99).Return(nil, nil)

	service := NewService(packageRepo)
	pkg, err := service.GetPackage(99)

	assert.ErrorIs(t, err, ErrPackageNotFound)
	assert.Nil(t, pkg)
}

func TestService_ListPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockPackageRepository(ctrl)
	packageRepo.EXPECT().ListPackages(true).Return([]*domain.InternetPackage{storedPackage()}, nil)

	service := NewService(packageRepo)
	packages, err := service.ListPackages(true)

	assert.NoError(t, err)
	assert.Len(t, packages, 1)
}

func TestService_ListPackages_ErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockPackageRepository(ctrl)
	packageRepo.EXPECT().ListPackages(false).Return(nil, errors.New("erro de banco"))

	service := NewService(packageRepo)
	packages, err := service.ListPackages(false)

	assert.Error(t, err)
	assert.Nil(t, packages)
}
