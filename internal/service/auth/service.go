package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/auth"
	"github.com/staffbook/staffbook-backend-go/internal/domain/cashbook"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/domain/subscription"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
	"github.com/staffbook/staffbook-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db               *database.DB
	userRepo         auth.UserRepository
	staffRepo        staff.StaffRepository
	attendanceRepo   attendance.AttendanceRepository
	cashbookRepo     cashbook.CashbookRepository
	subscriptionRepo subscription.SubscriptionRepository
	subscriptionSvc  subscription.SubscriptionService
	jwtService       jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo auth.UserRepository,
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
	cashbookRepo cashbook.CashbookRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	subscriptionSvc subscription.SubscriptionService,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:               db,
		userRepo:         userRepo,
		staffRepo:        staffRepo,
		attendanceRepo:   attendanceRepo,
		cashbookRepo:     cashbookRepo,
		subscriptionRepo: subscriptionRepo,
		subscriptionSvc:  subscriptionSvc,
		jwtService:       jwtService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	if _, err := s.userRepo.GetByMobile(ctx, req.Mobile); err == nil {
		return auth.AuthResponse{}, auth.ErrMobileExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, auth.User{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		BusinessName: req.BusinessName,
		StaffSize:    req.StaffSize,
		PasswordHash: string(hash),
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return s.buildAuthResponse(created)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	usr, err := s.userRepo.GetByMobile(ctx, req.Mobile)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)) != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return s.buildAuthResponse(usr)
}

func (s *AuthServiceImpl) buildAuthResponse(usr auth.User) (auth.AuthResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Mobile)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(usr.ID)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.AuthResponse{
		User:         toUserResponse(usr),
		Token:        accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.UserResponse, error) {
	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return toUserResponse(usr), nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) {
	s.jwtService.RevokeToken(token)
}

// DeleteAccount removes the tenant and everything they own. The gateway
// cancel happens first and is best-effort; the local purge is one
// all-or-nothing transaction so a failure never leaves orphaned rows.
// Trial-consumption rows are deliberately kept so the mobile number cannot
// claim a second trial by re-registering.
func (s *AuthServiceImpl) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	s.subscriptionSvc.CancelForUser(ctx, userID)

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.attendanceRepo.DeleteAllByUser(txCtx, userID); err != nil {
			return err
		}
		if err := s.staffRepo.DeleteAllByUser(txCtx, userID); err != nil {
			return err
		}
		if err := s.cashbookRepo.DeleteAllByUser(txCtx, userID); err != nil {
			return err
		}
		if err := s.subscriptionRepo.DeleteAllByUser(txCtx, userID); err != nil {
			return err
		}
		return s.userRepo.Delete(txCtx, userID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	log.Printf("Account deleted: user %s", userID)
	return nil
}

func toUserResponse(usr auth.User) auth.UserResponse {
	return auth.UserResponse{
		ID:           usr.ID,
		Name:         usr.Name,
		Email:        usr.Email,
		Mobile:       usr.Mobile,
		BusinessName: usr.BusinessName,
		StaffSize:    usr.StaffSize,
	}
}
