package sdb

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqliteInMemoryDSN is the DSN tests use to get a shared in-memory database.
const SqliteInMemoryDSN = "file::memory:?cache=shared"

func MakeDSNFromEnv() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USERNAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_DATABASE"))
}

const maxDBRetries = 5

// MustConnectToDB will attempt to connect to the database maxDBRetries times. If it isn't successful
// after that number of retries then it will call log.Fatalf(), which will cause the server to exit.
// Between retry attempts it will sleep for 3 seconds.
func MustConnectToDB() *gorm.DB {
	var (
		err error
		db  *gorm.DB
	)

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	retryCount := 1
	for {
		db, err = gorm.Open(mysql.Open(MakeDSNFromEnv()), gormConfig)
		switch {
		case err == nil:
			return db
		case retryCount >= maxDBRetries:
			log.Fatalf("Failed to open db (%s): %s", MakeDSNFromEnv(), err)
		default:
			retryCount++
			time.Sleep(3 * time.Second)
		}
	}
}

// RunMigrations creates the schema. Production runs against an externally
// migrated MySQL database; this exists for sqlite based tests.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&smodel.User{},
		&smodel.Client{},
		&smodel.Freelancer{},
		&smodel.Company{},
		&smodel.Request{},
		&smodel.Negotiation{},
		&smodel.NegotiationPhase{},
		&smodel.NegotiationComment{},
		&smodel.Project{},
		&smodel.ProjectPhase{},
		&smodel.Deliverable{},
		&smodel.Review{},
		&smodel.MediaFile{},
		&smodel.Report{},
		&smodel.Notification{},
		&smodel.HelpTicket{},
		&smodel.Offer{},
		&smodel.CommunityPost{},
		&smodel.CommunityComment{},
		&smodel.CommunityLike{},
		&smodel.FAQ{},
		&smodel.Skill{},
		&smodel.Category{},
	)
}
