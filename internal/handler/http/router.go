package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffbook/staffbook-backend-go/internal/config"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/middleware"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	staffHandler StaffHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	cashbookHandler CashbookHandler,
	subscriptionHandler SubscriptionHandler,
	webhookHandler WebhookHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffbook-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)
	slog.SetDefault(logger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Razorpay-Signature"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))

				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
				r.Delete("/account", authHandler.DeleteAccount)
			})
		})

		// Gateway webhooks authenticate by signature, not by token.
		r.Post("/webhooks/razorpay", webhookHandler.HandleRazorpay)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", staffHandler.List)
				r.Post("/", staffHandler.Create)
				r.Get("/{staffId}", staffHandler.Get)
				r.Put("/{staffId}", staffHandler.Update)
				r.Delete("/{staffId}", staffHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/mark", attendanceHandler.Mark)
				r.Post("/mark-ot", attendanceHandler.MarkOvertime)
				r.Post("/advance", attendanceHandler.MarkAdvance)
				r.Get("/staff/{staffId}", attendanceHandler.GetMonth)
			})

			r.Get("/report/labor/{staffId}", reportHandler.GetLaborReport)

			r.Route("/cashbook", func(r chi.Router) {
				r.Get("/overview", cashbookHandler.GetOverview)
				r.Get("/transactions", cashbookHandler.GetTransactions)
				r.Post("/income", cashbookHandler.AddIncome)
				r.Post("/expense", cashbookHandler.AddExpense)
				r.Put("/income/{entryId}", cashbookHandler.UpdateIncome)
				r.Put("/expense/{entryId}", cashbookHandler.UpdateExpense)
				r.Delete("/income/{entryId}", cashbookHandler.DeleteIncome)
				r.Delete("/expense/{entryId}", cashbookHandler.DeleteExpense)
			})

			r.Route("/subscription", func(r chi.Router) {
				r.Get("/status", subscriptionHandler.GetStatus)
				r.Post("/create", subscriptionHandler.Create)
				r.Post("/cancel", subscriptionHandler.Cancel)
			})
		})
	})

	return r
}
