package settings

import "time"

const (
	SingletonKey    = "default"
	DefaultLanguage = "en"
	DefaultTheme    = "light"
)

type Settings struct {
	Key         string    `gorm:"column:key;type:varchar(32);primaryKey"`
	CompanyName *string   `gorm:"column:company_name;type:varchar(255)"`
	Language    string    `gorm:"column:language;type:varchar(16);not null"`
	Theme       string    `gorm:"column:theme;type:varchar(16);not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}

// Defaults is what GET returns before any admin has saved settings.
func Defaults() Settings {
	return Settings{
		Key:      SingletonKey,
		Language: DefaultLanguage,
		Theme:    DefaultTheme,
	}
}
