package main

import (
	"time"

	"github.com/aidlink-next/internal/config"
	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/logger"
	"github.com/aidlink-next/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 管理员账号
	admins := []struct {
		username    string
		password    string
		role        string
		permissions models.StringList
	}{
		{"admin", "ChangeMe-Admin1", constants.AdminRoleSuperadmin, models.StringList{}},
		{"events-editor", "ChangeMe-Editor1", constants.AdminRoleEditor, models.StringList{
			constants.CapabilityManageEvents,
			constants.CapabilityManageGallery,
			constants.CapabilityManageVolunteers,
		}},
		{"outreach-editor", "ChangeMe-Editor2", constants.AdminRoleEditor, models.StringList{
			constants.CapabilityManageMessages,
			constants.CapabilityManageTestimonials,
			constants.CapabilityManagePartners,
		}},
	}
	for _, a := range admins {
		var existing models.Admin
		if err := models.DB.Where("username = ?", a.username).First(&existing).Error; err == nil {
			stdLog.Printf("Admin already exists: %s", a.username)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Fatalf("Failed to hash password: %v", err)
		}
		admin := models.Admin{
			Username:     a.username,
			PasswordHash: string(hash),
			Role:         a.role,
			Permissions:  a.permissions,
		}
		if err := models.DB.Create(&admin).Error; err != nil {
			stdLog.Printf("Failed to create admin %s: %v", a.username, err)
		} else {
			stdLog.Printf("Created admin: %s (%s)", a.username, a.role)
		}
	}

	// 活动
	nextMonth := time.Now().AddDate(0, 1, 0)
	lastMonth := time.Now().AddDate(0, -1, 0)
	events := []models.Event{
		{
			Slug:        "community-food-drive",
			Title:       "Community Food Drive",
			Summary:     "Collecting food donations for local families in need.",
			Content:     "Join us at the community center to sort and pack food parcels.",
			Location:    "Riverside Community Center",
			StartAt:     &nextMonth,
			IsPublished: true,
		},
		{
			Slug:        "winter-clothing-appeal",
			Title:       "Winter Clothing Appeal",
			Summary:     "Warm coats and blankets for the homeless shelter.",
			Location:    "Main Street Shelter",
			StartAt:     &lastMonth,
			IsPublished: true,
		},
		{
			Slug:  "volunteer-orientation",
			Title: "Volunteer Orientation (Draft)",
		},
	}
	for _, event := range events {
		var existing models.Event
		if err := models.DB.Where("slug = ?", event.Slug).First(&existing).Error; err == nil {
			stdLog.Printf("Event already exists: %s", event.Slug)
			continue
		}
		if err := models.DB.Create(&event).Error; err != nil {
			stdLog.Printf("Failed to create event %s: %v", event.Slug, err)
		} else {
			stdLog.Printf("Created event: %s", event.Slug)
		}
	}

	// 项目
	projects := []models.Project{
		{
			Slug:        "clean-water-initiative",
			Title:       "Clean Water Initiative",
			Summary:     "Bringing safe drinking water to rural communities.",
			Status:      constants.ProjectStatusOngoing,
			GoalAmount:  models.NewMoneyFromFloat(50000),
			IsPublished: true,
		},
		{
			Slug:        "school-supplies-2025",
			Title:       "School Supplies 2025",
			Summary:     "Backpacks and stationery for 500 students.",
			Status:      constants.ProjectStatusCompleted,
			GoalAmount:  models.NewMoneyFromFloat(12000),
			IsPublished: true,
		},
	}
	for _, project := range projects {
		var existing models.Project
		if err := models.DB.Where("slug = ?", project.Slug).First(&existing).Error; err == nil {
			stdLog.Printf("Project already exists: %s", project.Slug)
			continue
		}
		if err := models.DB.Create(&project).Error; err != nil {
			stdLog.Printf("Failed to create project %s: %v", project.Slug, err)
		} else {
			stdLog.Printf("Created project: %s", project.Slug)
		}
	}

	// 影响力指标
	stats := []models.ImpactStat{
		{Label: "Families Helped", Value: 1240, IsActive: true, SortOrder: 1},
		{Label: "Volunteers", Value: 320, IsActive: true, SortOrder: 2},
		{Label: "Funds Raised", Value: 87000, Unit: "USD", IsActive: true, SortOrder: 3},
	}
	for _, stat := range stats {
		var existing models.ImpactStat
		if err := models.DB.Where("label = ?", stat.Label).First(&existing).Error; err == nil {
			stdLog.Printf("Impact stat already exists: %s", stat.Label)
			continue
		}
		if err := models.DB.Create(&stat).Error; err != nil {
			stdLog.Printf("Failed to create impact stat %s: %v", stat.Label, err)
		} else {
			stdLog.Printf("Created impact stat: %s", stat.Label)
		}
	}

	// 感言
	testimonials := []models.Testimonial{
		{
			AuthorName:  "Maria Lopez",
			AuthorTitle: "Program Beneficiary",
			Quote:       "The food drive kept my family going through a hard winter.",
			IsPublished: true,
			SortOrder:   1,
		},
		{
			AuthorName:  "James Okoro",
			AuthorTitle: "Volunteer",
			Quote:       "Volunteering here is the most rewarding part of my week.",
			IsPublished: true,
			SortOrder:   2,
		},
	}
	for _, item := range testimonials {
		var existing models.Testimonial
		if err := models.DB.Where("author_name = ?", item.AuthorName).First(&existing).Error; err == nil {
			stdLog.Printf("Testimonial already exists: %s", item.AuthorName)
			continue
		}
		if err := models.DB.Create(&item).Error; err != nil {
			stdLog.Printf("Failed to create testimonial %s: %v", item.AuthorName, err)
		} else {
			stdLog.Printf("Created testimonial: %s", item.AuthorName)
		}
	}

	// 合作伙伴
	partners := []models.Partner{
		{Name: "Riverside Grocers", Website: "https://riverside-grocers.example.com", IsActive: true, SortOrder: 1},
		{Name: "City Credit Union", Website: "https://citycu.example.com", IsActive: true, SortOrder: 2},
	}
	for _, partner := range partners {
		var existing models.Partner
		if err := models.DB.Where("name = ?", partner.Name).First(&existing).Error; err == nil {
			stdLog.Printf("Partner already exists: %s", partner.Name)
			continue
		}
		if err := models.DB.Create(&partner).Error; err != nil {
			stdLog.Printf("Failed to create partner %s: %v", partner.Name, err)
		} else {
			stdLog.Printf("Created partner: %s", partner.Name)
		}
	}

	// 站点配置
	var existingSetting models.Setting
	if err := models.DB.Where("key = ?", constants.SettingKeySiteConfig).First(&existingSetting).Error; err != nil {
		setting := models.Setting{
			Key: constants.SettingKeySiteConfig,
			Value: models.JSON(map[string]interface{}{
				"site_name":     "AidLink",
				"tagline":       "Connecting help to where it is needed",
				"contact_email": "hello@aidlink.example.org",
			}),
		}
		if err := models.DB.Create(&setting).Error; err != nil {
			stdLog.Printf("Failed to create site config: %v", err)
		} else {
			stdLog.Printf("Created site config")
		}
	} else {
		stdLog.Printf("Site config already exists")
	}

	stdLog.Println("Seed data initialized")
}
