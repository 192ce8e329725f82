package repository

import (
	"time"

	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error)
	GetDonationTrends(startAt, endAt time.Time) ([]DashboardDonationTrendRow, error)
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	EventsTotal        int64
	EventsPublished    int64
	ProjectsOngoing    int64
	DonationsTotal     int64
	DonationsReceived  int64
	DonationSumAmount  float64
	MessagesUnread     int64
	VolunteersPending  int64
	VolunteersApproved int64
	NewDonations       int64
	NewMessages        int64
}

// DashboardDonationTrendRow 捐赠趋势统计
type DashboardDonationTrendRow struct {
	Day            string
	DonationsCount int64
	AmountReceived float64
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview 聚合总览统计
func (r *GormDashboardRepository) GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error) {
	var row DashboardOverviewRow

	if err := r.db.Model(&models.Event{}).Count(&row.EventsTotal).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Event{}).Where("is_published = ?", true).Count(&row.EventsPublished).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Project{}).
		Where("status = ?", constants.ProjectStatusOngoing).
		Count(&row.ProjectsOngoing).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Donation{}).Count(&row.DonationsTotal).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Donation{}).
		Where("status = ?", constants.DonationStatusReceived).
		Count(&row.DonationsReceived).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", constants.DonationStatusReceived).
		Scan(&row.DonationSumAmount).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Message{}).Where("is_read = ?", false).Count(&row.MessagesUnread).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Volunteer{}).
		Where("status = ?", constants.VolunteerStatusPending).
		Count(&row.VolunteersPending).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Volunteer{}).
		Where("status = ?", constants.VolunteerStatusApproved).
		Count(&row.VolunteersApproved).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Donation{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&row.NewDonations).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Message{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&row.NewMessages).Error; err != nil {
		return row, err
	}

	return row, nil
}

// GetDonationTrends 按天聚合捐赠趋势
func (r *GormDashboardRepository) GetDonationTrends(startAt, endAt time.Time) ([]DashboardDonationTrendRow, error) {
	rows := make([]DashboardDonationTrendRow, 0)
	dayExpr := "CAST(date(created_at) AS TEXT)"

	err := r.db.Model(&models.Donation{}).
		Select(dayExpr+" as day, COUNT(*) as donations_count, COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) as amount_received", constants.DonationStatusReceived).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group(dayExpr).
		Order("day asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
