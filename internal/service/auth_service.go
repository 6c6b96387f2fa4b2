package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/config"
	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
	"github.com/dioadam27-sketch/SIMPDB/pkg/jwt"
	"github.com/dioadam27-sketch/SIMPDB/pkg/redis"
)

// ── Auth business errors ──

var (
	ErrAdminLoginFailed    = errors.New("username atau password salah (coba: admin/admin)")
	ErrLecturerLoginFailed = errors.New("login gagal, pastikan NIP terdaftar dan password adalah NIP Anda")
	ErrRefreshTokenInvalid = errors.New("refresh token tidak valid")
)

// Role names carried in JWT claims.
const (
	RoleAdmin    = "admin"
	RoleLecturer = "lecturer"
)

// adminUserID is the fixed identity of the single admin account.
const adminUserID = "admin-1"

// AuthService handles both login flavors.
//
// The admin account is a single config-defined username/password pair.
// Lecturers authenticate with their NIP as both username and password;
// there is no separate credential store. Both rules are product
// behavior, not placeholders.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	// Logout blacklists the presented token until it would have
	// expired. Best-effort when Redis is unavailable.
	Logout(ctx context.Context, claims *jwt.Claims) error
	// CurrentUser resolves the authenticated identity, verifying that
	// a lecturer still exists in the master table.
	CurrentUser(ctx context.Context, claims *jwt.Claims) (*dto.UserInfo, error)
}

type authService struct {
	repo    *repository.Repository
	jwtMgr  *jwt.Manager
	rdb     *redis.Client // nil when Redis is down; logout degrades
	authCfg *config.AuthConfig
	logger  *zap.Logger
}

// NewAuthService creates an AuthService instance.
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, authCfg *config.AuthConfig, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, authCfg: authCfg, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user dto.UserInfo

	switch req.Role {
	case RoleAdmin:
		if req.Username != s.authCfg.AdminUsername || req.Password != s.authCfg.AdminPassword {
			return nil, ErrAdminLoginFailed
		}
		user = dto.UserInfo{ID: adminUserID, Name: "Administrator", Role: RoleAdmin}

	case RoleLecturer:
		lecturer, err := s.repo.Lecturer.GetByNIP(ctx, req.Username)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrLecturerLoginFailed
			}
			return nil, err
		}
		if req.Password != lecturer.NIP {
			return nil, ErrLecturerLoginFailed
		}
		user = dto.UserInfo{ID: lecturer.ID, Name: lecturer.Name, Role: RoleLecturer}

	default:
		return nil, ErrLecturerLoginFailed
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login ok", zap.String("user_id", user.ID), zap.String("role", user.Role))

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshTokenInvalid
	}

	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("blacklist check failed", zap.Error(err))
		} else if blacklisted {
			return nil, ErrRefreshTokenInvalid
		}
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(claims.UserID, claims.Name, claims.Role)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		s.logger.Warn("logout without redis, token stays valid until expiry",
			zap.String("user_id", claims.UserID))
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.rdb.BlacklistToken(ctx, claims.ID, ttl)
}

func (s *authService) CurrentUser(ctx context.Context, claims *jwt.Claims) (*dto.UserInfo, error) {
	if claims.Role == RoleAdmin {
		return &dto.UserInfo{ID: claims.UserID, Name: claims.Name, Role: RoleAdmin}, nil
	}

	lecturer, err := s.repo.Lecturer.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLecturerNotFound
		}
		return nil, err
	}
	return &dto.UserInfo{ID: lecturer.ID, Name: lecturer.Name, Role: RoleLecturer}, nil
}
