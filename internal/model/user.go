package model

import (
	"bytes"
	"encoding/json"
)

// User is the public profile of a ReadShelf account.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Owner is the user reference embedded in notes and comments.
// The backend sends either a populated profile object or a bare id string.
type Owner struct {
	ID      string
	profile *User
}

// NewOwner returns an Owner carrying full profile data.
func NewOwner(u User) Owner {
	return Owner{ID: u.ID, profile: &u}
}

// OwnerRef returns an Owner known only by id.
func OwnerRef(id string) Owner {
	return Owner{ID: id}
}

// Profile returns the populated profile, if the backend sent one.
func (o Owner) Profile() (User, bool) {
	if o.profile == nil {
		return User{}, false
	}
	return *o.profile, true
}

// UnmarshalJSON accepts a string id, a profile object, or null.
func (o *Owner) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*o = Owner{}
		return nil
	}
	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*o = OwnerRef(id)
		return nil
	}
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		return err
	}
	*o = NewOwner(u)
	return nil
}

// MarshalJSON mirrors the backend shape: profile object, bare id, or null.
func (o Owner) MarshalJSON() ([]byte, error) {
	if o.profile != nil {
		return json.Marshal(o.profile)
	}
	if o.ID != "" {
		return json.Marshal(o.ID)
	}
	return []byte("null"), nil
}
