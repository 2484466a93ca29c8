package main

import (
	"fmt"
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/config"
	appHTTP "github.com/staffbook/staffbook-backend-go/internal/handler/http"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/razorpay"
	"github.com/staffbook/staffbook-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffbook/staffbook-backend-go/internal/service/attendance"
	authService "github.com/staffbook/staffbook-backend-go/internal/service/auth"
	cashbookService "github.com/staffbook/staffbook-backend-go/internal/service/cashbook"
	reportService "github.com/staffbook/staffbook-backend-go/internal/service/report"
	staffService "github.com/staffbook/staffbook-backend-go/internal/service/staff"
	subscriptionService "github.com/staffbook/staffbook-backend-go/internal/service/subscription"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	cashbookRepo := postgresql.NewCashbookRepository(db)
	subscriptionRepo := postgresql.NewSubscriptionRepository(db)
	trialRepo := postgresql.NewTrialRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	gateway := razorpay.NewClient(cfg.Razorpay)
	webhookVerifier := razorpay.NewWebhookVerifier(cfg.Razorpay.WebhookSecret)

	subscriptionSvc := subscriptionService.NewSubscriptionService(
		subscriptionRepo,
		trialRepo,
		userRepo,
		gateway,
		cfg.Razorpay.PlanID,
		cfg.Razorpay.KeyID,
	)
	authSvc := authService.NewAuthService(
		db,
		userRepo,
		staffRepo,
		attendanceRepo,
		cashbookRepo,
		subscriptionRepo,
		subscriptionSvc,
		jwtService,
	)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo)
	reportSvc := reportService.NewReportService(staffRepo, attendanceRepo)
	cashbookSvc := cashbookService.NewCashbookService(cashbookRepo, attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	cashbookHandler := appHTTP.NewCashbookHandler(cashbookSvc)
	subscriptionHandler := appHTTP.NewSubscriptionHandler(subscriptionSvc)
	webhookHandler := appHTTP.NewWebhookHandler(subscriptionSvc, webhookVerifier)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		authHandler,
		staffHandler,
		attendanceHandler,
		reportHandler,
		cashbookHandler,
		subscriptionHandler,
		webhookHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
