//go:build integration
// +build integration

package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"gestman-backend/internal/database"
	"gestman-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Interrupted, purging shared Postgres container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

func tableNames(t *testing.T, db *gorm.DB, all []interface{}) []string {
	names := make([]string, 0, len(all))
	for _, model := range all {
		stmt := &gorm.Statement{DB: db}
		require.NoError(t, stmt.Parse(model))
		names = append(names, stmt.Schema.Table)
	}
	return names
}

func TestSuiteMigratesEachDatabaseSeparately(t *testing.T) {
	RunWithTestSuite(t, func(s *BaseTestSuite) {
		for _, table := range tableNames(t, s.RefDB, database.ReferenceModels()) {
			assert.True(t, s.RefDB.Migrator().HasTable(table), "reference table %s", table)
			assert.False(t, s.DB.Migrator().HasTable(table), "reference table %s in operational db", table)
		}
		for _, table := range tableNames(t, s.DB, database.OperationalModels()) {
			assert.True(t, s.DB.Migrator().HasTable(table), "operational table %s", table)
			assert.False(t, s.RefDB.Migrator().HasTable(table), "operational table %s in reference db", table)
		}
	})
}

func TestCleanTestDBTruncatesBothDatabases(t *testing.T) {
	RunWithTestSuite(t, func(s *BaseTestSuite) {
		factories := NewFactorySet()
		require.NoError(t, s.RefDB.Create(factories.Location.WithNumber("12")).Error)
		require.NoError(t, s.DB.Create(factories.Alert.Create()).Error)

		s.CleanTestDB()

		var locations, alerts int64
		require.NoError(t, s.RefDB.Model(&models.Location{}).Count(&locations).Error)
		require.NoError(t, s.DB.Model(&models.Alert{}).Count(&alerts).Error)
		assert.Zero(t, locations)
		assert.Zero(t, alerts)
	})
}
