package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/estudiolens/fotoestudio-api/internal/application/dto"
	"github.com/estudiolens/fotoestudio-api/internal/domain"
	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
	"github.com/estudiolens/fotoestudio-api/internal/domain/repository"
	"github.com/estudiolens/fotoestudio-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminConfig cuenta administrativa fija: define la regla de rol derivado y
// los datos del bootstrap inicial.
type AdminConfig struct {
	Email       string
	Password    string
	DisplayName string
}

// AuthUseCase contexto de sesión de la aplicación: registro, login y
// resolución del usuario actual con su rol derivado. Se construye una sola
// instancia en el arranque y se inyecta donde se necesite.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	adminCfg AdminConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, adminCfg AdminConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, adminCfg: adminCfg}
}

// Register crea una cuenta: hashea password con bcrypt, deriva el rol con la
// regla del email administrativo y persiste el documento de usuario.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.DisplayName
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		DisplayName:  name,
		Role:         ResolveRole(uc.adminCfg.Email, in.Email, ""),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.toUserResponse(user), nil
}

// Login verifica email/password, genera el JWT con el rol derivado y retorna
// token + usuario compuesto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	role := ResolveRole(uc.adminCfg.Email, user.Email, user.Role)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *uc.toUserResponse(user),
	}, nil
}

// CurrentUser resuelve el usuario actual desde el documento persistido y
// compone el rol derivado. Es el equivalente a la resolución de estado de
// sesión en cada cambio de autenticación.
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.toUserResponse(user), nil
}

// EnsureAdminAccount bootstrap idempotente de la cuenta administrativa:
// busca por email (no por una clave fija, que era la fuente de duplicados) y
// solo crea la cuenta si no existe. El caller decide qué hacer con el error;
// por contrato nunca debe bloquear el arranque.
func (uc *AuthUseCase) EnsureAdminAccount() error {
	if uc.adminCfg.Email == "" || uc.adminCfg.Password == "" {
		return nil // sin credenciales configuradas no hay nada que sembrar
	}
	existing, err := uc.userRepo.GetByEmail(uc.adminCfg.Email)
	if err != nil {
		return fmt.Errorf("buscar cuenta admin: %w", err)
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(uc.adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear password admin: %w", err)
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        uc.adminCfg.Email,
		PasswordHash: string(hash),
		DisplayName:  uc.adminCfg.DisplayName,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(admin); err != nil {
		// Una carrera con otro arranque puede haberla creado primero: eso es éxito.
		if err == domain.ErrEmailAlreadyExists {
			return nil
		}
		return fmt.Errorf("crear cuenta admin: %w", err)
	}
	return nil
}

// ListUsers lista todos los usuarios (vista admin), con rol derivado.
func (uc *AuthUseCase) ListUsers() ([]*dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, uc.toUserResponse(u))
	}
	return out, nil
}

func (uc *AuthUseCase) toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        ResolveRole(uc.adminCfg.Email, u.Email, u.Role),
		CreatedAt:   u.CreatedAt,
	}
}
