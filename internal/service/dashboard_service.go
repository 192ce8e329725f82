package service

import (
	"time"

	"github.com/aidlink-next/internal/repository"
)

// DashboardService 仪表盘业务服务
type DashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// DashboardOverview 仪表盘总览
type DashboardOverview struct {
	EventsTotal        int64   `json:"events_total"`
	EventsPublished    int64   `json:"events_published"`
	ProjectsOngoing    int64   `json:"projects_ongoing"`
	DonationsTotal     int64   `json:"donations_total"`
	DonationsReceived  int64   `json:"donations_received"`
	DonationSumAmount  float64 `json:"donation_sum_amount"`
	MessagesUnread     int64   `json:"messages_unread"`
	VolunteersPending  int64   `json:"volunteers_pending"`
	VolunteersApproved int64   `json:"volunteers_approved"`
	NewDonations       int64   `json:"new_donations"`
	NewMessages        int64   `json:"new_messages"`
	RangeDays          int     `json:"range_days"`
}

// DonationTrendPoint 捐赠趋势点
type DonationTrendPoint struct {
	Day            string  `json:"day"`
	DonationsCount int64   `json:"donations_count"`
	AmountReceived float64 `json:"amount_received"`
}

// GetOverview 获取最近 N 天总览统计
func (s *DashboardService) GetOverview(rangeDays int) (*DashboardOverview, error) {
	rangeDays = normalizeRangeDays(rangeDays)
	endAt := time.Now()
	startAt := endAt.AddDate(0, 0, -rangeDays)

	row, err := s.repo.GetOverview(startAt, endAt)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		EventsTotal:        row.EventsTotal,
		EventsPublished:    row.EventsPublished,
		ProjectsOngoing:    row.ProjectsOngoing,
		DonationsTotal:     row.DonationsTotal,
		DonationsReceived:  row.DonationsReceived,
		DonationSumAmount:  row.DonationSumAmount,
		MessagesUnread:     row.MessagesUnread,
		VolunteersPending:  row.VolunteersPending,
		VolunteersApproved: row.VolunteersApproved,
		NewDonations:       row.NewDonations,
		NewMessages:        row.NewMessages,
		RangeDays:          rangeDays,
	}, nil
}

// GetDonationTrends 获取最近 N 天捐赠趋势
func (s *DashboardService) GetDonationTrends(rangeDays int) ([]DonationTrendPoint, error) {
	rangeDays = normalizeRangeDays(rangeDays)
	endAt := time.Now()
	startAt := endAt.AddDate(0, 0, -rangeDays)

	rows, err := s.repo.GetDonationTrends(startAt, endAt)
	if err != nil {
		return nil, err
	}

	points := make([]DonationTrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, DonationTrendPoint{
			Day:            row.Day,
			DonationsCount: row.DonationsCount,
			AmountReceived: row.AmountReceived,
		})
	}
	return points, nil
}

func normalizeRangeDays(rangeDays int) int {
	if rangeDays <= 0 {
		return 7
	}
	if rangeDays > 90 {
		return 90
	}
	return rangeDays
}
