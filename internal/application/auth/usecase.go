package auth

import (
	"time"

	"github.com/jhoicas/mockshop-api/internal/application/dto"
	"github.com/jhoicas/mockshop-api/internal/domain"
	"github.com/jhoicas/mockshop-api/internal/domain/entity"
	"github.com/jhoicas/mockshop-api/internal/domain/repository"
	"github.com/jhoicas/mockshop-api/pkg/token"
)

// Config opciones de sesión.
type Config struct {
	TTL time.Duration // vigencia del token emitido en login
}

// AuthUseCase casos de uso de autenticación: login contra las cuentas de
// prueba estáticas y validación de tokens opacos de sesión.
type AuthUseCase struct {
	accounts repository.AccountRepository
	sessions repository.SessionRepository
	gen      token.Generator
	cfg      Config
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso con el reloj del sistema.
func NewAuthUseCase(accounts repository.AccountRepository, sessions repository.SessionRepository, gen token.Generator, cfg Config) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, sessions: sessions, gen: gen, cfg: cfg, now: time.Now}
}

// WithClock sustituye el reloj (tests de expiración).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// Login valida username/password contra las cuentas estáticas y, si
// coinciden, registra una sesión nueva con token opaco y vencimiento.
// Username desconocido y password incorrecto responden igual: ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accounts.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Password != in.Password {
		return nil, domain.ErrUnauthorized
	}

	now := uc.now()
	session := &entity.Session{
		Token:     uc.gen.SessionToken(),
		Username:  account.Username,
		Role:      account.Role,
		Name:      account.Name,
		IssuedAt:  now,
		ExpiresAt: now.Add(uc.cfg.TTL),
	}
	if err := uc.sessions.Save(session); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.DateTime),
		User: dto.SessionUser{
			Username: session.Username,
			Role:     session.Role,
			Name:     session.Name,
		},
	}, nil
}

// Validate busca el token en las sesiones activas y verifica el vencimiento.
// Una sesión vencida se elimina del store y devuelve ErrSessionExpired.
func (uc *AuthUseCase) Validate(tok string) (*entity.Session, error) {
	session, err := uc.sessions.Get(tok)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	if session.Expired(uc.now()) {
		_ = uc.sessions.Delete(tok)
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}
