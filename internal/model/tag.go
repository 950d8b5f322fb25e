package model

// Tag text is globally unique and deduplicated case-sensitively: linking a
// form to a tag string reuses an existing row on exact match.
type Tag struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Text string `json:"text" gorm:"uniqueIndex;not null"`
}

type FormTag struct {
	FormID uint `gorm:"primaryKey" json:"form_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}
