// Package database owns the sqlite connection, schema migration and the
// initial admin seed.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/velmara/heritage-panel/config"
	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/util/crypto"
)

var db *gorm.DB

func initModels() error {
	models := []any{
		&model.Admin{},
		&model.Notification{},
		&model.ContactMessage{},
		&model.Event{},
		&model.GalleryItem{},
		&model.JobPosting{},
		&model.Collaborator{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdmin seeds the default administrator when the table is empty.
func initAdmin() error {
	empty, err := isTableEmpty("admins")
	if err != nil {
		log.Printf("Error checking if admins table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	hash, err := crypto.HashPasswordAsBcrypt(config.GetDefaultAdminPassword())
	if err != nil {
		return err
	}
	admin := &model.Admin{
		Username:     "admin",
		Email:        config.GetDefaultAdminEmail(),
		PasswordHash: hash,
		Role:         "admin",
	}
	return db.Create(admin).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initAdmin()
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
