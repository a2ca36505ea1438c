package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smarttask/internal/classifier"
	"smarttask/internal/config"
	"smarttask/internal/handler"
	"smarttask/internal/middleware"
	"smarttask/internal/repository"
	"smarttask/internal/service"
	"smarttask/migrations"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to access DB handle: %w", err)
	}
	if err := runMigrations(sqlDB); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Database schema up to date")

	// Setup Gin
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// Initialize layers
	taskRepo := repository.NewTaskRepository(db)
	priorityClient := classifier.NewClient(cfg.AIServiceURL, cfg.AITimeout)
	taskService := service.NewTaskService(taskRepo, priorityClient)
	taskHandler := handler.NewTaskHandler(taskService)

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Smart Task Manager API is running")
	})
	r.GET("/tasks", taskHandler.GetTasks)
	r.POST("/tasks", taskHandler.Create)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.PATCH("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

// runMigrations applies the embedded schema migrations; applying an
// already-migrated schema is a no-op.
func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
