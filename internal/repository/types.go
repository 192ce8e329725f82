package repository

import "time"

// EventListFilter 查询活动列表的过滤条件
type EventListFilter struct {
	Page          int
	PageSize      int
	Search        string
	OnlyPublished bool
	Upcoming      bool
	OrderBy       string
}

// ProjectListFilter 查询项目列表的过滤条件
type ProjectListFilter struct {
	Page          int
	PageSize      int
	Search        string
	Status        string
	OnlyPublished bool
	OrderBy       string
}

// GalleryListFilter 查询相册列表的过滤条件
type GalleryListFilter struct {
	Page          int
	PageSize      int
	EventID       uint
	OnlyPublished bool
}

// MessageListFilter 查询消息列表的过滤条件
type MessageListFilter struct {
	Page        int
	PageSize    int
	Search      string
	IsRead      *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// DonationListFilter 查询捐赠列表的过滤条件
type DonationListFilter struct {
	Page        int
	PageSize    int
	Search      string
	Status      string
	Method      string
	ProjectID   uint
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// VolunteerListFilter 查询志愿者报名列表的过滤条件
type VolunteerListFilter struct {
	Page     int
	PageSize int
	Search   string
	Status   string
	EventID  uint
}

// TestimonialListFilter 查询感言列表的过滤条件
type TestimonialListFilter struct {
	Page          int
	PageSize      int
	OnlyPublished bool
}

// PartnerListFilter 查询合作伙伴列表的过滤条件
type PartnerListFilter struct {
	Page       int
	PageSize   int
	OnlyActive bool
}
