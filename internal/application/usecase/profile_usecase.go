package usecase

import (
	"context"
	"time"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/domain"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/internal/domain/repository"
)

// ProfileUseCase operaciones sobre el perfil del usuario autenticado.
type ProfileUseCase struct {
	userRepo      repository.UserRepository
	tokenRepo     repository.RefreshTokenRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewProfileUseCase construye el caso de uso de perfil.
func NewProfileUseCase(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository, analyticsRepo repository.AnalyticsRepository) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo, tokenRepo: tokenRepo, analyticsRepo: analyticsRepo}
}

// Get devuelve el perfil del usuario.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Update aplica un PATCH parcial sobre el perfil.
func (uc *ProfileUseCase) Update(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Statistics actividad del usuario dentro del tenant activo.
func (uc *ProfileUseCase) Statistics(ctx context.Context, tenantID, userID string) (*dto.ProfileStatisticsResponse, error) {
	stats, err := uc.analyticsRepo.GetUserStats(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileStatisticsResponse{
		PedidosCreados:        stats.PedidosCreados,
		EventosCreados:        stats.EventosCreados,
		SesionesUltimos30Dias: stats.SesionesUltimos30Dias,
	}, nil
}

// Completion porcentaje de perfil completado y campos faltantes.
func (uc *ProfileUseCase) Completion(ctx context.Context, userID string) (*dto.ProfileCompletionResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	fields := []struct {
		name  string
		value string
	}{
		{"username", user.Username},
		{"email", user.Email},
		{"name", user.Name},
	}
	var missing []string
	filled := 0
	for _, f := range fields {
		if f.value != "" {
			filled++
		} else {
			missing = append(missing, f.name)
		}
	}
	return &dto.ProfileCompletionResponse{
		Percent: filled * 100 / len(fields),
		Missing: missing,
	}, nil
}

// Activity últimas sesiones del usuario (emisiones de refresh token).
func (uc *ProfileUseCase) Activity(ctx context.Context, userID string, limit int) ([]dto.SessionResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	tokens, err := uc.tokenRepo.ListRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionResponse, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, dto.SessionResponse{
			ID:        t.ID,
			TenantID:  t.TenantID,
			CreatedAt: t.CreatedAt,
			ExpiresAt: t.ExpiresAt,
			RevokedAt: t.RevokedAt,
		})
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
