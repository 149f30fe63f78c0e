package models

import "github.com/google/uuid"

type NodeKind string

const (
	NodeKindFile   NodeKind = "file"
	NodeKindFolder NodeKind = "folder"
)

func (k NodeKind) Valid() bool {
	return k == NodeKindFile || k == NodeKindFolder
}

// FileNode forms the explorer tree. Root nodes have a nil ParentID. Content
// is only meaningful for file kind; folders keep it empty.
type FileNode struct {
	BaseModel
	Name     string     `json:"name" gorm:"type:varchar(255);not null"`
	Kind     NodeKind   `json:"type" gorm:"type:varchar(10);not null;index"`
	ParentID *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Content  string     `json:"content" gorm:"type:text"`
	OwnerID  uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index"`

	Parent   *FileNode  `json:"-" gorm:"foreignKey:ParentID"`
	Children []FileNode `json:"-" gorm:"foreignKey:ParentID"`
	Owner    User       `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}
