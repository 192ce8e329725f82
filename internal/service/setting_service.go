package service

import (
	"context"
	"time"

	"github.com/aidlink-next/internal/cache"
	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/logger"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
)

// siteConfigCacheKey 公开站点配置缓存键
const siteConfigCacheKey = "settings:site_config"

// siteConfigCacheTTL 站点配置缓存时长
const siteConfigCacheTTL = 5 * time.Minute

// SettingService 站点配置业务服务
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService 创建配置服务
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// defaultSiteConfig 站点配置默认值
func defaultSiteConfig() map[string]interface{} {
	return map[string]interface{}{
		"site_name":    "AidLink",
		"tagline":      "",
		"contact_email": "",
		"contact_phone": "",
		"address":      "",
		"social_links": map[string]interface{}{},
	}
}

// GetPublicConfig 获取公开站点配置，优先读缓存
func (s *SettingService) GetPublicConfig(ctx context.Context) (map[string]interface{}, error) {
	var cached map[string]interface{}
	hit, err := cache.GetJSON(ctx, siteConfigCacheKey, &cached)
	if err != nil {
		logger.Warnw("site_config_cache_read_failed", "error", err)
	}
	if hit && cached != nil {
		return cached, nil
	}

	data, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, siteConfigCacheKey, data, siteConfigCacheTTL); err != nil {
		logger.Warnw("site_config_cache_write_failed", "error", err)
	}
	return data, nil
}

// GetConfig 获取站点配置（合并默认值）
func (s *SettingService) GetConfig() (map[string]interface{}, error) {
	data := defaultSiteConfig()

	setting, err := s.repo.GetByKey(constants.SettingKeySiteConfig)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return data, nil
	}

	for k, v := range setting.Value {
		data[k] = v
	}
	return data, nil
}

// GetByKey 获取配置
func (s *SettingService) GetByKey(key string) (models.JSON, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}
	return setting.Value, nil
}

// Update 更新配置并失效缓存
func (s *SettingService) Update(ctx context.Context, key string, value map[string]interface{}) (models.JSON, error) {
	setting, err := s.repo.Upsert(key, models.JSON(value))
	if err != nil {
		return nil, err
	}
	if key == constants.SettingKeySiteConfig {
		if err := cache.Del(ctx, siteConfigCacheKey); err != nil {
			logger.Warnw("site_config_cache_invalidate_failed", "error", err)
		}
	}
	return setting.Value, nil
}
