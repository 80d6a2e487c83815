package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/audit"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/project"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

// Open connects with unique-key violations translated to gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	logLevel := logger.Warn
	if config.IsProduction {
		logLevel = logger.Error
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         newLogger(log.New(os.Stdout, "\r\n", log.LstdFlags), logLevel),
	})
}

// newLogger skips ErrRecordNotFound, which existence checks hit on normal requests.
func newLogger(w logger.Writer, level logger.LogLevel) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  !config.IsProduction,
	})
}

// Migrate creates or updates every table, including the project_assignments join table.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.SetupJoinTable(&project.Project{}, "AssignedUsers", &project.Assignment{}); err != nil {
		return err
	}
	return gormDB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&project.Assignment{},
		&ticket.Ticket{},
		&ticket.History{},
		&audit.AuditLog{},
	)
}

func Init() {
	var err error
	DB, err = Open(DSN())
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}
	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}
	log.Println("Database connected and migrated")
}
