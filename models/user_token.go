package models

// UserToken is an opaque bearer credential granting write access to project
// routes. Tokens carry no identity and never expire; the value itself is the
// primary key, so re-minting an existing value can never create a duplicate.
type UserToken struct {
	Token string `json:"token" gorm:"primaryKey;type:text"`
}

func (UserToken) TableName() string { return "user_tokens" }
