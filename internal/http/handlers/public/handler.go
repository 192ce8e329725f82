package public

import "github.com/aidlink-next/internal/provider"

// Handler 前台/公开接口处理器入口
// 说明：该处理器仅用于游客侧 API，无需登录。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
