package entity

import (
	"time"
)

// SettingKey enumerates the recognized configuration keys. Writes to keys
// outside this set are rejected before any remote call.
type SettingKey string

const (
	SettingMaintenanceMode SettingKey = "maintenanceMode"
	SettingContactEmail    SettingKey = "contactEmail"
	SettingContactPhone    SettingKey = "contactPhone"
	SettingServiceArea     SettingKey = "serviceArea"
	SettingHeroVideoURL    SettingKey = "heroVideoUrl"
	SettingCertifiedBadge  SettingKey = "certifiedBadgeEnabled"
)

var settingDisplayNames = map[SettingKey]string{
	SettingMaintenanceMode: "Maintenance mode",
	SettingContactEmail:    "Contact email",
	SettingContactPhone:    "Contact phone",
	SettingServiceArea:     "Service area",
	SettingHeroVideoURL:    "Hero video",
	SettingCertifiedBadge:  "Certified dealer badge",
}

func (k SettingKey) IsKnown() bool {
	_, ok := settingDisplayNames[k]
	return ok
}

// DisplayName is the human-readable name interpolated into user-facing
// error messages.
func (k SettingKey) DisplayName() string {
	if name, ok := settingDisplayNames[k]; ok {
		return name
	}
	return string(k)
}

type Setting struct {
	Key       SettingKey  `json:"key" firestore:"key"`
	Value     interface{} `json:"value" firestore:"value"`
	IsActive  bool        `json:"is_active" firestore:"isActive"`
	IsDeleted bool        `json:"is_deleted" firestore:"isDeleted"`
	UpdatedAt time.Time   `json:"updated_at" firestore:"updatedAt"`
	UpdatedBy string      `json:"updated_by,omitempty" firestore:"updatedBy,omitempty"`
}

// SettingFilter constrains a settings query. Nil fields mean "don't
// constrain on this field".
type SettingFilter struct {
	IsActive  *bool
	IsDeleted *bool
}

func (f SettingFilter) Matches(s Setting) bool {
	if f.IsActive != nil && s.IsActive != *f.IsActive {
		return false
	}
	if f.IsDeleted != nil && s.IsDeleted != *f.IsDeleted {
		return false
	}
	return true
}
