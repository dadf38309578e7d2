package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gestman-backend/internal/config"
	"gestman-backend/internal/database"
	"gestman-backend/internal/database/models"
	"gestman-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type AssetTypeData struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Fields      map[string]interface{} `yaml:"fields"`
	FieldsOrder []string               `yaml:"fields_order"`
}

type LocationData struct {
	Number      string `yaml:"number"`
	Description string `yaml:"description"`
}

type AssetData struct {
	CompanyID      string                 `yaml:"company_id"`
	Type           string                 `yaml:"type"`
	LocationNumber string                 `yaml:"location_number"`
	Data           map[string]interface{} `yaml:"data,omitempty"`
}

type UserData struct {
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
}

type ContactCategoryData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

type ChecklistItemData struct {
	AssetType   string `yaml:"asset_type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type MaintenanceTypeData struct {
	AssetType       string `yaml:"asset_type"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	FrequencyMonths int    `yaml:"frequency_months"`
	LeadTimeDays    int    `yaml:"lead_time_days"`
}

type ChannelData struct {
	Name            string   `yaml:"name"`
	ChatID          string   `yaml:"chat_id"`
	Categories      []string `yaml:"categories"`
	LocationFilter  []string `yaml:"location_filter,omitempty"`
	AssetTypeFilter []string `yaml:"asset_type_filter,omitempty"`
}

type FormFieldData struct {
	Key            string   `yaml:"key"`
	Label          string   `yaml:"label"`
	Type           string   `yaml:"type"`
	Required       bool     `yaml:"required"`
	GeneratesAlert bool     `yaml:"generates_alert,omitempty"`
	Choices        []Choice `yaml:"choices,omitempty"`
}

type Choice struct {
	Value          string `yaml:"value"`
	Label          string `yaml:"label"`
	GeneratesAlert bool   `yaml:"generates_alert,omitempty"`
}

type FormTemplateData struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	AssetType   string          `yaml:"asset_type"`
	Fields      []FormFieldData `yaml:"fields"`
}

// Wrapper structures for YAML files
type ReferenceFile struct {
	AssetTypes        []AssetTypeData       `yaml:"asset_types"`
	Locations         []LocationData        `yaml:"locations"`
	Assets            []AssetData           `yaml:"assets"`
	Users             []UserData            `yaml:"users"`
	ContactCategories []ContactCategoryData `yaml:"contact_categories"`
}

type OperationalFile struct {
	ChecklistItems   []ChecklistItemData   `yaml:"checklist_items"`
	MaintenanceTypes []MaintenanceTypeData `yaml:"maintenance_types"`
	Channels         []ChannelData         `yaml:"channels"`
	FormTemplates    []FormTemplateData    `yaml:"form_templates"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to both databases with retry (for dockerized Postgres startup)
	refDB, err := connectWithRetry(cfg.ReferenceDatabaseURL, database.ReferenceModels(), 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to reference database: %v", err)
	}
	opsDB, err := connectWithRetry(cfg.OperationalDatabaseURL, database.OperationalModels(), 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to operational database: %v", err)
	}

	var ref ReferenceFile
	if err := loadYAMLFiles("scripts/data/reference", &ref); err != nil {
		log.Fatalf("Failed to read reference data: %v", err)
	}
	var ops OperationalFile
	if err := loadYAMLFiles("scripts/data/operational", &ops); err != nil {
		log.Fatalf("Failed to read operational data: %v", err)
	}

	if err := loadReferenceData(refDB, &ref); err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}
	if err := loadOperationalData(opsDB, &ops); err != nil {
		log.Fatalf("Failed to load operational data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, migrate []interface{}, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
		Models:   migrate,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadYAMLFiles decodes every .yaml file under dir into out; list fields accumulate across files
func loadYAMLFiles[T any](dir string, out *T) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var part T
		if err := yaml.Unmarshal(data, &part); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		merge(out, &part)
		return nil
	})
}

func merge[T any](dst, src *T) {
	switch d := any(dst).(type) {
	case *ReferenceFile:
		s := any(src).(*ReferenceFile)
		d.AssetTypes = append(d.AssetTypes, s.AssetTypes...)
		d.Locations = append(d.Locations, s.Locations...)
		d.Assets = append(d.Assets, s.Assets...)
		d.Users = append(d.Users, s.Users...)
		d.ContactCategories = append(d.ContactCategories, s.ContactCategories...)
	case *OperationalFile:
		s := any(src).(*OperationalFile)
		d.ChecklistItems = append(d.ChecklistItems, s.ChecklistItems...)
		d.MaintenanceTypes = append(d.MaintenanceTypes, s.MaintenanceTypes...)
		d.Channels = append(d.Channels, s.Channels...)
		d.FormTemplates = append(d.FormTemplates, s.FormTemplates...)
	}
}

func loadReferenceData(db *gorm.DB, ref *ReferenceFile) error {
	created := 0
	for _, at := range ref.AssetTypes {
		order := at.FieldsOrder
		if len(order) == 0 || order[0] != "company_id" {
			order = append([]string{"company_id"}, order...)
		}
		fields := datatypes.JSONMap{"company_id": map[string]interface{}{"type": "text", "required": true}}
		for k, v := range at.Fields {
			fields[k] = v
		}
		ok, err := firstOrCreate(db, &models.AssetType{
			Name:           at.Name,
			Description:    at.Description,
			FieldsTemplate: fields,
			FieldsOrder:    order,
			IsActive:       true,
		}, "name = ?", at.Name)
		if err != nil {
			return fmt.Errorf("failed to create asset type %s: %w", at.Name, err)
		}
		created += ok
	}
	log.Printf("📋 Asset types: %d created, %d total", created, len(ref.AssetTypes))

	created = 0
	for _, l := range ref.Locations {
		ok, err := firstOrCreate(db, &models.Location{Number: l.Number, Description: l.Description}, "number = ?", l.Number)
		if err != nil {
			return fmt.Errorf("failed to create location %s: %w", l.Number, err)
		}
		created += ok
	}
	log.Printf("📋 Locations: %d created, %d total", created, len(ref.Locations))

	created = 0
	for _, a := range ref.Assets {
		data := datatypes.JSONMap{"company_id": a.CompanyID}
		for k, v := range a.Data {
			data[k] = v
		}
		ok, err := firstOrCreate(db, &models.Asset{
			CompanyID:      a.CompanyID,
			Type:           a.Type,
			LocationNumber: a.LocationNumber,
			Data:           data,
		}, "company_id = ?", a.CompanyID)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create asset %s: %v", a.CompanyID, err)
			continue
		}
		created += ok
	}
	log.Printf("📋 Assets: %d created, %d total", created, len(ref.Assets))

	created = 0
	for _, u := range ref.Users {
		role := models.UserRole(u.Role)
		if role == "" {
			role = models.UserRoleOperator
		}
		ok, err := firstOrCreate(db, &models.User{
			Username: u.Username,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     role,
			IsActive: true,
		}, "username = ?", u.Username)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}
		created += ok
	}
	log.Printf("📋 Users: %d created, %d total", created, len(ref.Users))

	created = 0
	for _, cc := range ref.ContactCategories {
		ok, err := firstOrCreate(db, &models.ContactCategory{
			Name:        cc.Name,
			Description: cc.Description,
			Icon:        cc.Icon,
			Color:       cc.Color,
		}, "name = ?", cc.Name)
		if err != nil {
			return fmt.Errorf("failed to create contact category %s: %w", cc.Name, err)
		}
		created += ok
	}
	log.Printf("📋 Contact categories: %d created, %d total", created, len(ref.ContactCategories))

	return nil
}

func loadOperationalData(db *gorm.DB, ops *OperationalFile) error {
	created := 0
	order := map[string]int{}
	for _, ci := range ops.ChecklistItems {
		order[ci.AssetType]++
		ok, err := firstOrCreate(db, &models.ChecklistItem{
			AssetType:    ci.AssetType,
			Name:         ci.Name,
			Description:  ci.Description,
			DisplayOrder: order[ci.AssetType],
			IsActive:     true,
		}, "asset_type = ? AND name = ?", ci.AssetType, ci.Name)
		if err != nil {
			return fmt.Errorf("failed to create checklist item %s: %w", ci.Name, err)
		}
		created += ok
	}
	log.Printf("📋 Checklist items: %d created, %d total", created, len(ops.ChecklistItems))

	created = 0
	for _, mt := range ops.MaintenanceTypes {
		ok, err := firstOrCreate(db, &models.MaintenanceType{
			AssetType:       mt.AssetType,
			Name:            mt.Name,
			Description:     mt.Description,
			FrequencyMonths: mt.FrequencyMonths,
			LeadTimeDays:    mt.LeadTimeDays,
			IsActive:        true,
		}, "asset_type = ? AND name = ?", mt.AssetType, mt.Name)
		if err != nil {
			return fmt.Errorf("failed to create maintenance type %s: %w", mt.Name, err)
		}
		created += ok
	}
	log.Printf("📋 Maintenance types: %d created, %d total", created, len(ops.MaintenanceTypes))

	created = 0
	for _, ch := range ops.Channels {
		ok, err := firstOrCreate(db, &models.NotificationChannel{
			Name:            ch.Name,
			ChatID:          ch.ChatID,
			Categories:      ch.Categories,
			LocationFilter:  ch.LocationFilter,
			AssetTypeFilter: ch.AssetTypeFilter,
			IsActive:        true,
		}, "chat_id = ?", ch.ChatID)
		if err != nil {
			return fmt.Errorf("failed to create channel %s: %w", ch.Name, err)
		}
		created += ok
	}
	log.Printf("📋 Notification channels: %d created, %d total", created, len(ops.Channels))

	created = 0
	for _, ft := range ops.FormTemplates {
		ok, err := createFormTemplate(db, ft)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create form template %s: %v", ft.Name, err)
			continue
		}
		created += ok
	}
	log.Printf("📋 Form templates: %d created, %d total", created, len(ops.FormTemplates))

	return nil
}

// createFormTemplate inserts a template with the standard fields first, then the listed ones
func createFormTemplate(db *gorm.DB, ft FormTemplateData) (int, error) {
	var existing models.FormTemplate
	err := db.Where("name = ?", ft.Name).First(&existing).Error
	if err == nil {
		return 0, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to query form template: %w", err)
	}

	fields := []models.FormField{
		{Key: service.FieldKeyInterventionDate, Label: "Intervention date", Type: models.FieldDate, Required: true},
		{Key: service.FieldKeyOperator, Label: "Operator", Type: models.FieldText, Required: true},
	}
	for _, f := range ft.Fields {
		if f.Key == service.FieldKeyInterventionDate || f.Key == service.FieldKeyOperator {
			continue
		}
		opts := models.FieldOptions{GeneratesAlert: f.GeneratesAlert}
		for _, c := range f.Choices {
			opts.Choices = append(opts.Choices, models.FieldChoice{Value: c.Value, Label: c.Label, GeneratesAlert: c.GeneratesAlert})
		}
		fields = append(fields, models.FormField{
			Key:      f.Key,
			Label:    f.Label,
			Type:     models.FieldType(f.Type),
			Required: f.Required,
			Options:  datatypes.NewJSONType(opts),
		})
	}
	for i := range fields {
		fields[i].DisplayOrder = i + 1
	}

	tmpl := models.FormTemplate{
		Name:        ft.Name,
		Description: ft.Description,
		AssetType:   ft.AssetType,
		IsActive:    true,
		Fields:      fields,
	}
	if err := db.Create(&tmpl).Error; err != nil {
		return 0, fmt.Errorf("failed to create form template: %w", err)
	}
	return 1, nil
}

// firstOrCreate inserts row unless a record matching the condition exists; returns 1 when created
func firstOrCreate[T any](db *gorm.DB, row *T, query string, args ...interface{}) (int, error) {
	var existing T
	err := db.Where(query, args...).First(&existing).Error
	if err == nil {
		return 0, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to query: %w", err)
	}
	if err := db.Create(row).Error; err != nil {
		return 0, err
	}
	return 1, nil
}
