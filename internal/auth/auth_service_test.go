package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/auth"
	autherrors "go-payroll/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	getByEmailFn       func(ctx context.Context, email string) (*auth.User, error)
	getByIDFn          func(ctx context.Context, id uuid.UUID) (*auth.User, error)
	createFn           func(ctx context.Context, user *auth.User) error
	updatePasswordFn   func(ctx context.Context, id uuid.UUID, hashed string) error
	updateRoleFn       func(ctx context.Context, email, role string) (int64, error)
	employeeFullNameFn func(ctx context.Context, employeeID uuid.UUID) (string, error)
	createLoginLogFn   func(ctx context.Context, log *auth.LoginLog) error
	getLoginLogFn      func(ctx context.Context, id uuid.UUID) (*auth.LoginLog, error)
	closeLoginLogFn    func(ctx context.Context, id uuid.UUID, at time.Time) (int64, error)
	listLoginLogsFn    func(ctx context.Context, limit int) ([]auth.LoginLogWithName, error)
}

func (f *fakeAuthRepository) WithTx(tx *sql.Tx) auth.Repository { return f }

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeAuthRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, id, hashed)
	}
	return nil
}

func (f *fakeAuthRepository) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	if f.updateRoleFn != nil {
		return f.updateRoleFn(ctx, email, role)
	}
	return 1, nil
}

func (f *fakeAuthRepository) EmployeeFullName(ctx context.Context, employeeID uuid.UUID) (string, error) {
	if f.employeeFullNameFn != nil {
		return f.employeeFullNameFn(ctx, employeeID)
	}
	return "", nil
}

func (f *fakeAuthRepository) CreateLoginLog(ctx context.Context, log *auth.LoginLog) error {
	if f.createLoginLogFn != nil {
		return f.createLoginLogFn(ctx, log)
	}
	return nil
}

func (f *fakeAuthRepository) GetLoginLog(ctx context.Context, id uuid.UUID) (*auth.LoginLog, error) {
	if f.getLoginLogFn != nil {
		return f.getLoginLogFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) CloseLoginLog(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	if f.closeLoginLogFn != nil {
		return f.closeLoginLogFn(ctx, id, at)
	}
	return 1, nil
}

func (f *fakeAuthRepository) ListLoginLogs(ctx context.Context, limit int) ([]auth.LoginLogWithName, error) {
	if f.listLoginLogsFn != nil {
		return f.listLoginLogsFn(ctx, limit)
	}
	return nil, nil
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	employeeID := uuid.New()
	activeUser := &auth.User{
		ID:         uuid.New(),
		EmployeeID: &employeeID,
		Email:      "jane@example.com",
		Password:   string(pw),
		Role:       "Employee",
		IsActive:   true,
	}

	t.Run("success", func(t *testing.T) {
		var loggedLog *auth.LoginLog
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				assert.Equal(t, activeUser.Email, email)
				return activeUser, nil
			},
			employeeFullNameFn: func(ctx context.Context, id uuid.UUID) (string, error) {
				return "Jane Doe", nil
			},
			createLoginLogFn: func(ctx context.Context, log *auth.LoginLog) error {
				loggedLog = log
				return nil
			},
		}

		service := auth.NewService(repo)
		resp, err := service.Login(ctx, activeUser.Email, password)

		assert.NoError(t, err)
		assert.Equal(t, "Employee", resp.Role)
		assert.Equal(t, employeeID.String(), resp.EmployeeID)
		assert.Equal(t, "Jane Doe", resp.FullName)
		assert.NotEmpty(t, resp.AccessToken)
		if assert.NotNil(t, loggedLog) {
			assert.Equal(t, loggedLog.ID.String(), resp.LogID)
			assert.Nil(t, loggedLog.LogoutTime)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return activeUser, nil
			},
		}

		service := auth.NewService(repo)
		_, err := service.Login(ctx, activeUser.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		service := auth.NewService(&fakeAuthRepository{})
		_, err := service.Login(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive := *activeUser
		inactive.IsActive = false
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return &inactive, nil
			},
		}

		service := auth.NewService(repo)
		_, err := service.Login(ctx, activeUser.Email, password)
		assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	logID := uuid.New()

	t.Run("closes open log", func(t *testing.T) {
		var closedID uuid.UUID
		repo := &fakeAuthRepository{
			closeLoginLogFn: func(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
				closedID = id
				return 1, nil
			},
		}

		service := auth.NewService(repo)
		err := service.Logout(ctx, logID.String())
		assert.NoError(t, err)
		assert.Equal(t, logID, closedID)
	})

	t.Run("idempotent when already closed", func(t *testing.T) {
		closedAt := time.Now().UTC()
		repo := &fakeAuthRepository{
			closeLoginLogFn: func(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
				return 0, nil
			},
			getLoginLogFn: func(ctx context.Context, id uuid.UUID) (*auth.LoginLog, error) {
				return &auth.LoginLog{ID: id, LogoutTime: &closedAt}, nil
			},
		}

		service := auth.NewService(repo)
		assert.NoError(t, service.Logout(ctx, logID.String()))
	})

	t.Run("unknown log id", func(t *testing.T) {
		repo := &fakeAuthRepository{
			closeLoginLogFn: func(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
				return 0, nil
			},
		}

		service := auth.NewService(repo)
		err := service.Logout(ctx, logID.String())
		assert.ErrorIs(t, err, autherrors.ErrLoginLogNotFound)
	})

	t.Run("malformed log id", func(t *testing.T) {
		service := auth.NewService(&fakeAuthRepository{})
		err := service.Logout(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidLogID)
	})
}

func TestService_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	oldPassword := "oldpass123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(oldPassword), bcrypt.DefaultCost)
	user := &auth.User{ID: uuid.New(), Password: string(pw), IsActive: true}

	t.Run("success", func(t *testing.T) {
		var storedHash string
		repo := &fakeAuthRepository{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
				return user, nil
			},
			updatePasswordFn: func(ctx context.Context, id uuid.UUID, hashed string) error {
				storedHash = hashed
				return nil
			},
		}

		service := auth.NewService(repo)
		err := service.UpdatePassword(ctx, user.ID.String(), auth.UpdatePasswordRequest{
			OldPassword: oldPassword,
			NewPassword: "newpass456",
		})

		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("newpass456")))
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo := &fakeAuthRepository{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
				return user, nil
			},
		}

		service := auth.NewService(repo)
		err := service.UpdatePassword(ctx, user.ID.String(), auth.UpdatePasswordRequest{
			OldPassword: "wrong",
			NewPassword: "newpass456",
		})
		assert.ErrorIs(t, err, autherrors.ErrIncorrectPassword)
	})
}

func TestService_UpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeAuthRepository{
			updateRoleFn: func(ctx context.Context, email, role string) (int64, error) {
				assert.Equal(t, "HR Manager", role)
				return 1, nil
			},
		}

		service := auth.NewService(repo)
		resp, err := service.UpdateRole(ctx, auth.UpdateRoleRequest{
			Email: "jane@example.com",
			Role:  "HR Manager",
		})
		assert.NoError(t, err)
		assert.Equal(t, "HR Manager", resp.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		service := auth.NewService(&fakeAuthRepository{})
		_, err := service.UpdateRole(ctx, auth.UpdateRoleRequest{
			Email: "jane@example.com",
			Role:  "Superuser",
		})
		assert.ErrorIs(t, err, autherrors.ErrUnknownRole)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := &fakeAuthRepository{
			updateRoleFn: func(ctx context.Context, email, role string) (int64, error) {
				return 0, nil
			},
		}

		service := auth.NewService(repo)
		_, err := service.UpdateRole(ctx, auth.UpdateRoleRequest{
			Email: "ghost@example.com",
			Role:  "Manager",
		})
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

func TestService_GetLogs(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	logoutAt := time.Date(2026, 3, 2, 18, 4, 0, 0, time.UTC)

	repo := &fakeAuthRepository{
		listLoginLogsFn: func(ctx context.Context, limit int) ([]auth.LoginLogWithName, error) {
			return []auth.LoginLogWithName{
				{
					LoginLog: auth.LoginLog{
						ID:         uuid.New(),
						EmployeeID: &employeeID,
						LoginTime:  time.Date(2026, 3, 2, 9, 1, 0, 0, time.UTC),
						LogoutTime: &logoutAt,
					},
					FullName: "Jane Doe",
				},
				{
					LoginLog: auth.LoginLog{
						ID:        uuid.New(),
						LoginTime: time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC),
					},
					FullName: "",
				},
			}, nil
		},
	}

	service := auth.NewService(repo)
	logs, err := service.GetLogs(ctx)

	assert.NoError(t, err)
	if assert.Len(t, logs, 2) {
		assert.Equal(t, "Jane Doe", logs[0].FullName)
		assert.NotNil(t, logs[0].LogoutTime)
		assert.Nil(t, logs[1].LogoutTime)
		assert.Empty(t, logs[1].EmployeeID)
	}
}

func TestService_GetLogs_RepoError(t *testing.T) {
	repo := &fakeAuthRepository{
		listLoginLogsFn: func(ctx context.Context, limit int) ([]auth.LoginLogWithName, error) {
			return nil, errors.New("db down")
		},
	}

	service := auth.NewService(repo)
	_, err := service.GetLogs(context.Background())
	assert.Error(t, err)
}
