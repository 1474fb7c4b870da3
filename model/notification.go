package model

type Notification struct {
	DTO
	UserID  uint   `gorm:"index" json:"userId"`
	Title   string `gorm:"size:120" json:"title"`
	Message string `json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}
