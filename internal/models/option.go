package models

// OptionModel is a key/value settings record. Values are opaque JSON blobs;
// interpretation belongs to the settings module.
type OptionModel struct {
	Base
	Name  string `json:"name"  gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:longtext"`
}

func (OptionModel) TableName() string { return "options" }
