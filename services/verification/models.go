package verification

import "time"

// VerificationCode is the database form of a Record. There is no soft
// delete: consumed and superseded codes are removed outright so the unique
// destination index always reflects the single pending record.
type VerificationCode struct {
	ID          uint      `json:"-" gorm:"primarykey"`
	Destination string    `json:"destination" gorm:"uniqueIndex;size:191;not null"`
	Code        string    `json:"-" gorm:"not null"`
	ExpiresAt   time.Time `json:"expires_at" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (VerificationCode) TableName() string {
	return "verification_codes"
}
