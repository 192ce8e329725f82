package constants

// 管理员角色常量
const (
	AdminRoleSuperadmin = "superadmin"
	AdminRoleEditor     = "editor"
)

// 后台能力（权限标识）常量
const (
	CapabilityManageEvents       = "manage_events"
	CapabilityManageProjects     = "manage_projects"
	CapabilityManageGallery      = "manage_gallery"
	CapabilityManageImpact       = "manage_impact"
	CapabilityManageMessages     = "manage_messages"
	CapabilityManageDonations    = "manage_donations"
	CapabilityManageVolunteers   = "manage_volunteers"
	CapabilityManageTestimonials = "manage_testimonials"
	CapabilityManagePartners     = "manage_partners"
)

// Capabilities 能力全集（顺序即后台展示顺序）
var Capabilities = []string{
	CapabilityManageEvents,
	CapabilityManageProjects,
	CapabilityManageGallery,
	CapabilityManageImpact,
	CapabilityManageMessages,
	CapabilityManageDonations,
	CapabilityManageVolunteers,
	CapabilityManageTestimonials,
	CapabilityManagePartners,
}

// IsValidCapability 判断能力标识是否在全集内
func IsValidCapability(name string) bool {
	for _, capability := range Capabilities {
		if capability == name {
			return true
		}
	}
	return false
}

// 项目状态常量
const (
	ProjectStatusOngoing   = "ongoing"
	ProjectStatusCompleted = "completed"
)

// 捐赠状态常量
const (
	DonationStatusPledged  = "pledged"
	DonationStatusReceived = "received"
)

// 捐赠方式常量
const (
	DonationMethodCash         = "cash"
	DonationMethodBankTransfer = "bank_transfer"
	DonationMethodInKind       = "in_kind"
	DonationMethodOther        = "other"
)

// 志愿者申请状态常量
const (
	VolunteerStatusPending  = "pending"
	VolunteerStatusApproved = "approved"
	VolunteerStatusRejected = "rejected"
)

// 设置键常量
const (
	SettingKeySiteConfig = "site_config"
)

// 队列常量
const (
	QueueDefault = "default"

	TaskDonationReceipt   = "donation:receipt"
	TaskMessageUnreadSync = "message:refresh_unread"
)

// 验证码场景常量
const (
	CaptchaSceneContact = "contact"
)
