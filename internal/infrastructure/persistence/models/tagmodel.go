package models

type TagModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	Color     string `gorm:"size:7;not null"`
	Category  string `gorm:"size:30;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}
