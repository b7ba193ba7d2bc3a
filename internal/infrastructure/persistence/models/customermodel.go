package models

type CustomerModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Company   string `gorm:"size:200;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Phone     string `gorm:"size:50"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
