package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/rbac"
	"go-payroll/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const accessTokenTTL = 24 * time.Hour

type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	Logout(ctx context.Context, logID string) error
	UpdatePassword(ctx context.Context, userID string, req UpdatePasswordRequest) error
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (UserRoleResponse, error)
	GetUserRole(ctx context.Context, email string) (UserRoleResponse, error)
	GetLogs(ctx context.Context) ([]LoginLogResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("login rejected for deactivated account",
			zap.String("request_id", rid),
			zap.String("email", email),
		)
		return LoginResponse{}, autherrors.ErrAccountInactive
	}

	var fullName string
	employeeID := ""
	if user.EmployeeID != nil {
		employeeID = user.EmployeeID.String()
		fullName, err = s.repo.EmployeeFullName(ctx, *user.EmployeeID)
		if err != nil {
			return LoginResponse{}, err
		}
	}

	log := &LoginLog{
		ID:         uuid.New(),
		UserID:     user.ID,
		EmployeeID: user.EmployeeID,
		LoginTime:  time.Now().UTC(),
	}
	if err := s.repo.CreateLoginLog(ctx, log); err != nil {
		return LoginResponse{}, err
	}

	token, err := s.generateToken(user, fullName, log.ID.String())
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return LoginResponse{
		Role:        user.Role,
		EmployeeID:  employeeID,
		FullName:    fullName,
		LogID:       log.ID.String(),
		AccessToken: token,
	}, nil
}

func (s *service) Logout(ctx context.Context, logID string) error {
	id, err := uuid.Parse(logID)
	if err != nil {
		return autherrors.ErrInvalidLogID
	}

	affected, err := s.repo.CloseLoginLog(ctx, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// Zero rows means either the log is already closed (fine) or it never
	// existed.
	if _, err := s.repo.GetLoginLog(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrLoginLogNotFound
		}
		return err
	}
	return nil
}

func (s *service) UpdatePassword(ctx context.Context, userID string, req UpdatePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return autherrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return autherrors.ErrIncorrectPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		return err
	}

	s.logger.Info("password updated", zap.String("user_id", userID))
	return nil
}

func (s *service) UpdateRole(ctx context.Context, req UpdateRoleRequest) (UserRoleResponse, error) {
	if !rbac.IsKnownRole(req.Role) {
		return UserRoleResponse{}, autherrors.ErrUnknownRole
	}

	affected, err := s.repo.UpdateRole(ctx, req.Email, req.Role)
	if err != nil {
		return UserRoleResponse{}, err
	}
	if affected == 0 {
		return UserRoleResponse{}, autherrors.ErrUserNotFound
	}

	s.logger.Info("role updated",
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)
	return UserRoleResponse{Email: req.Email, Role: req.Role}, nil
}

func (s *service) GetUserRole(ctx context.Context, email string) (UserRoleResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserRoleResponse{}, autherrors.ErrUserNotFound
		}
		return UserRoleResponse{}, err
	}
	return UserRoleResponse{Email: user.Email, Role: user.Role}, nil
}

func (s *service) GetLogs(ctx context.Context) ([]LoginLogResponse, error) {
	logs, err := s.repo.ListLoginLogs(ctx, 200)
	if err != nil {
		return nil, err
	}

	out := make([]LoginLogResponse, 0, len(logs))
	for _, l := range logs {
		resp := LoginLogResponse{
			ID:        l.ID.String(),
			FullName:  l.FullName,
			LoginTime: l.LoginTime.Format(time.RFC3339),
		}
		if l.EmployeeID != nil {
			resp.EmployeeID = l.EmployeeID.String()
		}
		if l.LogoutTime != nil {
			t := l.LogoutTime.Format(time.RFC3339)
			resp.LogoutTime = &t
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *service) generateToken(user *User, fullName, logID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"role":      user.Role,
		"full_name": fullName,
		"log_id":    logID,
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
	}
	if user.EmployeeID != nil {
		claims["employee_id"] = user.EmployeeID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
