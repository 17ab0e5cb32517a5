package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/zakcom/sales-tracker-api/internal/config"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "chave-de-teste"}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T, userRepo *mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "Login com credenciais válidas gera token",
			email:    "Joana.Cumbe@zakcom.example ",
			password: "Senha@123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				// Email normalizado: minúsculas, sem espaços
				userRepo.EXPECT().GetUserByEmail("joana.cumbe@zakcom.example").Return(&domain.User{
					ID:           7,
					Name:         "Joana",
					Email:        "joana.cumbe@zakcom.example",
					Active:       true,
					RoleID:       domain.RoleAgent,
					PasswordHash: hashOf(t, "Senha@123"),
				}, nil)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "joana.cumbe@zakcom.example",
			password: "errada",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("joana.cumbe@zakcom.example").Return(&domain.User{
					ID:           7,
					Active:       true,
					PasswordHash: hashOf(t, "Senha@123"),
				}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "Conta desativada",
			email:    "joana.cumbe@zakcom.example",
			password: "Senha@123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("joana.cumbe@zakcom.example").Return(&domain.User{
					ID:           7,
					Active:       false,
					PasswordHash: hashOf(t, "Senha@123"),
				}, nil)
			},
			wantErr: ErrUserDisabled,
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@zakcom.example",
			password: "Senha@123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@zakcom.example").Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "Email e senha obrigatórios",
			email:    "",
			password: "",
			setup:    func(t *testing.T, userRepo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			service := NewService(userRepo, testConfig())
			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			// O token gerado deve validar com a mesma chave
			claims, err := service.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, 7, claims.UserID)
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		setup    func(userRepo *mocks.MockUserRepository)
		wantErr  error
		validate func(t *testing.T, created *domain.User)
	}{
		{
			name: "Usuário novo entra inativo e com papel de vendedor",
			user: &domain.User{
				Name:         "Carlos",
				Lastname:     "Macuácua",
				Email:        "Carlos.Macuacua@zakcom.example",
				PasswordHash: "Senha@123",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("carlos.macuacua@zakcom.example").Return(nil, nil)
				userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(
					func(user *domain.User) (*domain.User, error) {
						assert.False(t, user.Active)
						assert.Equal(t, domain.RoleAgent, user.RoleID)
						// Senha nunca é persistida em claro
						assert.NotEqual(t, "Senha@123", user.PasswordHash)
						created := *user
						created.ID = 8
						return &created, nil
					})
			},
			validate: func(t *testing.T, created *domain.User) {
				assert.Equal(t, 8, created.ID)
			},
		},
		{
			name: "Email já cadastrado",
			user: &domain.User{
				Name:         "Carlos",
				Lastname:     "Macuácua",
				Email:        "carlos.macuacua@zakcom.example",
				PasswordHash: "Senha@123",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("carlos.macuacua@zakcom.example").Return(&domain.User{ID: 3}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name:    "Campos obrigatórios ausentes",
			user:    &domain.User{Email: "carlos.macuacua@zakcom.example"},
			setup:   func(userRepo *mocks.MockUserRepository) {},
			wantErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())
			created, err := service.CreateUser(tt.user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, created)
		})
	}
}

func TestService_DeleteUser(t *testing.T) {
	tests := []struct {
		name          string
		requestUserID int
		targetUserID  int
		setup         func(userRepo *mocks.MockUserRepository)
		wantErr       error
	}{
		{
			name:          "Administrador remove vendedor - soft delete",
			requestUserID: 1,
			targetUserID:  7,
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
				userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, RoleID: domain.RoleAgent, Active: true}, nil)
				userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(
					func(user *domain.User) error {
						assert.False(t, user.Active)
						assert.True(t, user.Deleted)
						assert.NotNil(t, user.DeletedAt)
						return nil
					})
			},
		},
		{
			name:          "Ninguém remove a si mesmo",
			requestUserID: 7,
			targetUserID:  7,
			setup:         func(userRepo *mocks.MockUserRepository) {},
			wantErr:       ErrCannotDeleteSelf,
		},
		{
			name:          "Vendedor não remove usuários",
			requestUserID: 7,
			targetUserID:  8,
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, RoleID: domain.RoleAgent}, nil)
			},
			wantErr: ErrNoAdminPrivileges,
		},
		{
			name:          "Usuário alvo inexistente",
			requestUserID: 1,
			targetUserID:  99,
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
				userRepo.EXPECT().GetUserByID(99).Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())
			err := service.DeleteUser(tt.requestUserID, tt.targetUserID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "Senha forte", password: "Senha@123"},
		{name: "Curta demais", password: "Se@1", wantErr: "a senha deve conter pelo menos 8 caracteres"},
		{name: "Sem maiúscula", password: "senha@123", wantErr: "a senha deve conter pelo menos uma letra maiúscula"},
		{name: "Sem minúscula", password: "SENHA@123", wantErr: "a senha deve conter pelo menos uma letra minúscula"},
		{name: "Sem número", password: "Senha@abc", wantErr: "a senha deve conter pelo menos um número"},
		{name: "Sem caractere especial", password: "Senha1234", wantErr: "a senha deve conter pelo menos um caractere especial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	tests := []struct {
		name            string
		currentPassword string
		newPassword     string
		setup           func(t *testing.T, userRepo *mocks.MockUserRepository)
		wantErr         string
	}{
		{
			name:            "Troca com senha atual correta",
			currentPassword: "Senha@123",
			newPassword:     "NovaSenha@456",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
					ID:           7,
					PasswordHash: hashOf(t, "Senha@123"),
				}, nil)
				userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)
			},
		},
		{
			name:            "Senha atual incorreta",
			currentPassword: "errada",
			newPassword:     "NovaSenha@456",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
					ID:           7,
					PasswordHash: hashOf(t, "Senha@123"),
				}, nil)
			},
			wantErr: "senha atual incorreta",
		},
		{
			name:            "Nova senha fraca",
			currentPassword: "Senha@123",
			newPassword:     "fraca",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
					ID:           7,
					PasswordHash: hashOf(t, "Senha@123"),
				}, nil)
			},
			wantErr: "a senha deve conter pelo menos 8 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			service := NewService(userRepo, testConfig())
			err := service.ChangePassword(7, tt.currentPassword, tt.newPassword)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_GenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, RoleID: domain.RoleAgent}, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

	service := NewService(userRepo, testConfig())
	password, err := service.GenerateStrongPassword(1, 7)

	assert.NoError(t, err)
	// A senha gerada deve passar na própria validação de força
	assert.NoError(t, service.ValidatePasswordStrength(password))
}

func TestService_GenerateStrongPassword_SemPrivilegio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, RoleID: domain.RoleAgent}, nil)

	service := NewService(userRepo, testConfig())
	password, err := service.GenerateStrongPassword(7, 8)

	assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	assert.Empty(t, password)
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
		ID:           7,
		Name:         "Joana",
		PasswordHash: "hash-interno",
	}, nil)

	service := NewService(userRepo, testConfig())
	user, err := service.GetUserProfile(7)

	assert.NoError(t, err)
	// O hash da senha nunca sai do serviço
	assert.Empty(t, user.PasswordHash)
}

func TestService_GetUserProfile_NaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

	service := NewService(userRepo, testConfig())
	user, err := service.GetUserProfile(99)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestService_ValidateToken_TokenInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	claims, err := service.ValidateToken("token-malformado")

	assert.Error(t, err)
	assert.Nil(t, claims)
}
