package main

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/config"
	"fintrack/internal/db"
	"fintrack/internal/finance/application"
	"fintrack/internal/finance/infrastructure"
	"fintrack/internal/finance/interfaces"
	"fintrack/internal/log"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

// statusRecorder captures the response code for the request log line.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		logger.Info("request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start).String(),
		)
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *db.Service
	userHandler        *interfaces.UserHandler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
}

func NewServer(
	dbService *db.Service,
	userHandler *interfaces.UserHandler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		userHandler:        userHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	stats := s.dbService.Health()
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, stats)
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	router.Handle("GET /health", http.HandlerFunc(s.handleHealth))

	router.Handle("POST /api/users", http.HandlerFunc(s.userHandler.CreateUser))
	router.Handle("GET /api/users", http.HandlerFunc(s.userHandler.ListUsers))
	router.Handle("GET /api/users/{userID}", http.HandlerFunc(s.userHandler.GetUser))
	router.Handle("PUT /api/users/{userID}", http.HandlerFunc(s.userHandler.UpdateUser))
	router.Handle("DELETE /api/users/{userID}", http.HandlerFunc(s.userHandler.DeleteUser))

	router.Handle("POST /api/categories", http.HandlerFunc(s.categoryHandler.CreateCategory))
	router.Handle("GET /api/categories", http.HandlerFunc(s.categoryHandler.ListCategories))
	router.Handle("GET /api/categories/{categoryID}", http.HandlerFunc(s.categoryHandler.GetCategory))
	router.Handle("PUT /api/categories/{categoryID}", http.HandlerFunc(s.categoryHandler.UpdateCategory))
	router.Handle("DELETE /api/categories/{categoryID}", http.HandlerFunc(s.categoryHandler.DeleteCategory))

	router.Handle("POST /api/transactions", http.HandlerFunc(s.transactionHandler.CreateTransaction))
	router.Handle("GET /api/transactions", http.HandlerFunc(s.transactionHandler.ListTransactions))
	router.Handle("GET /api/transactions/summary", http.HandlerFunc(s.transactionHandler.GetSummary))
	router.Handle("GET /api/transactions/balance", http.HandlerFunc(s.transactionHandler.GetBalance))
	router.Handle("GET /api/transactions/export", http.HandlerFunc(s.transactionHandler.ExportTransactions))
	router.Handle("GET /api/transactions/{transactionID}", http.HandlerFunc(s.transactionHandler.GetTransaction))
	router.Handle("PUT /api/transactions/{transactionID}", http.HandlerFunc(s.transactionHandler.UpdateTransaction))
	router.Handle("DELETE /api/transactions/{transactionID}", http.HandlerFunc(s.transactionHandler.DeleteTransaction))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	logger := log.New(log.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	dbService, err := db.NewService(cfg.DatabaseURL)
	if err != nil {
		logger.Error("could not initialize database", "error", err)
		os.Exit(1)
	}
	defer dbService.Close()

	if err := db.RunMigrations(dbService.DB); err != nil {
		logger.Error("could not run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := infrastructure.NewUserRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	userService := application.NewUserService(userRepo, logger)
	categoryService := application.NewCategoryService(categoryRepo, logger)
	transactionService := application.NewTransactionService(
		transactionRepo, userRepo, categoryRepo, cfg.MonthlyLimit, logger)

	userHandler := interfaces.NewUserHandler(userService, respondJSON, respondError)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	server := NewServer(dbService, userHandler, categoryHandler, transactionHandler)
	server.RegisterRoutes()

	handler := loggingMiddleware(logger.WithComponent("http"), server.router)

	logger.Info("server starting", "port", cfg.Port, "monthly_limit", cfg.MonthlyLimit)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
