package service

import (
	"os"
	"testing"

	"github.com/op/go-logging"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("PANEL_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)
	os.Exit(m.Run())
}

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}
