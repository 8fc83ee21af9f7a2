package server

import (
	"fmt"
	"path/filepath"
	"time"

	"safetravelbuddy/server/gstorage"
	"safetravelbuddy/server/models"
	"safetravelbuddy/server/work"
)

const staleJourneyMaxAge = 24 * time.Hour

// dispatchSosSms delivers one queued SOS message via sms.
func dispatchSosSms(args map[string]interface{}) error {
	to, ok := args["to"].(string)
	if !ok || to == "" {
		return fmt.Errorf("dispatchSosSms: missing 'to' arg")
	}

	message, ok := args["message"].(string)
	if !ok || message == "" {
		return fmt.Errorf("dispatchSosSms: missing 'message' arg")
	}

	return smsClient.SendMessage(to, message)
}

// closeStaleJourneys closes journeys whose owners never ended them.
func closeStaleJourneys(map[string]interface{}) error {
	closed, err := models.CloseStaleJourneys(staleJourneyMaxAge)
	if err != nil {
		return fmt.Errorf("closeStaleJourneys: %v", err)
	}

	if closed > 0 {
		logg.Infof("closed %v stale journey(s)", closed)
	}

	return nil
}

// backupSqliteDb uploads the sqlite db file to google cloud storage.
func backupSqliteDb(map[string]interface{}) error {
	if serverConfig.Google.Storage.Bucket == "" {
		return fmt.Errorf("backupSqliteDb: no backup bucket configured")
	}

	gs, err := gstorage.NewGStorage(serverConfig.Google.ApplicationCredentials)
	if err != nil {
		return err
	}

	dbDir, err := models.DbDirectory(dataRootDir)
	if err != nil {
		return err
	}

	return gs.UploadFile(serverConfig.Google.Storage.Bucket, filepath.Join(dbDir, models.DB_NAME))
}

func registerJobHandlers(wpa *work.WorkerPoolAdapter) {
	wpa.Register("dispatchSosSms", dispatchSosSms)
	wpa.Register("closeStaleJourneys", closeStaleJourneys)
	wpa.Register("backupSqliteDb", backupSqliteDb)
}

func enqueuePeriodicJobs(wpa *work.WorkerPoolAdapter) {
	wpa.PeriodicallyPerform("*/30 * * * *", work.JobParams{
		Name:    "closeStaleJourneys",
		Handler: "closeStaleJourneys",
		Unique:  true,
		Args:    map[string]interface{}{},
	})

	if fmt.Sprintf("%v", serverConfig.Google.Storage.EnableSqliteBackupAndSync) == "true" {
		wpa.PeriodicallyPerform(serverConfig.Google.Storage.SqliteBackupSchedule, work.JobParams{
			Name:    "backupSqliteDb",
			Handler: "backupSqliteDb",
			Unique:  true,
			Args:    map[string]interface{}{},
		})
	}
}
