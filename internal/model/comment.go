package model

// Comment is a reader comment on a public note.
type Comment struct {
	ID        string `json:"_id"`
	Text      string `json:"text"`
	User      Owner  `json:"user"`
	CreatedAt string `json:"createdAt,omitempty"`
}
