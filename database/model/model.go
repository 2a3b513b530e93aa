// Package model defines the persisted entities of the heritage panel.
package model

// Admin is a back-office user. The password hash is never serialized.
type Admin struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Role         string `json:"role" gorm:"not null;default:admin"`
	AvatarURL    string `json:"avatarUrl"`
	CreatedAt    int64  `json:"createdAt" gorm:"autoCreateTime"`
}

// Notification types.
const (
	NotificationTypeContact = "contact"
	NotificationTypeSystem  = "system"
)

// Notification is a record of a noteworthy event for administrators.
// Read transitions false->true only.
type Notification struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Type      string `json:"type" gorm:"not null;default:system"`
	Title     string `json:"title" gorm:"not null"`
	Message   string `json:"message" gorm:"type:text"`
	Read      bool   `json:"read" gorm:"not null;default:false"`
	ContactId *int   `json:"contactId" gorm:"index"`
	CreatedAt int64  `json:"createdAt" gorm:"autoCreateTime"`
}

// ContactMessage statuses form a closed enumeration.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusResolved = "resolved"
	ContactStatusSpam     = "spam"
)

// ValidContactStatus reports whether s is one of the known statuses.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied,
		ContactStatusResolved, ContactStatusSpam:
		return true
	}
	return false
}

// ContactMessage is a visitor-submitted inquiry.
type ContactMessage struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"not null;index"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject" gorm:"not null"`
	Message   string `json:"message" gorm:"type:text;not null"`
	Status    string `json:"status" gorm:"not null;default:new"`
	Reply     string `json:"reply" gorm:"type:text"`
	RepliedAt int64  `json:"repliedAt"`
	CreatedAt int64  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt int64  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Event is a cultural event shown on the public site.
type Event struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
	Location    string `json:"location"`
	StartsAt    int64  `json:"startsAt"`
	EndsAt      int64  `json:"endsAt"`
	ImageURL    string `json:"imageUrl"`
	Published   bool   `json:"published" gorm:"not null;default:false"`
	CreatedAt   int64  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   int64  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// GalleryItem is an image in the public gallery.
type GalleryItem struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl" gorm:"not null"`
	ThumbURL  string `json:"thumbUrl"`
	Category  string `json:"category" gorm:"index"`
	SortOrder int    `json:"sortOrder" gorm:"not null;default:0"`
	CreatedAt int64  `json:"createdAt" gorm:"autoCreateTime"`
}

// JobPosting is an open position listed on the site.
type JobPosting struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string `json:"title" gorm:"not null"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	Description  string `json:"description" gorm:"type:text"`
	Requirements string `json:"requirements" gorm:"type:text"`
	Active       bool   `json:"active" gorm:"not null;default:true"`
	ClosesAt     int64  `json:"closesAt"`
	CreatedAt    int64  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    int64  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Collaborator is a partner organization shown on the site.
type Collaborator struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"not null"`
	LogoURL   string `json:"logoUrl"`
	Website   string `json:"website"`
	Blurb     string `json:"blurb" gorm:"type:text"`
	SortOrder int    `json:"sortOrder" gorm:"not null;default:0"`
	CreatedAt int64  `json:"createdAt" gorm:"autoCreateTime"`
}
