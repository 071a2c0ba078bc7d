package model

// Category is the closed set of note kinds a share path can carry.
type Category string

const (
	CategoryBook    Category = "book"
	CategoryVideo   Category = "video"
	CategoryArticle Category = "article"
	CategoryCourse  Category = "course"
	CategoryGeneral Category = "general"
)

var categoryLabels = map[Category]string{
	CategoryBook:    "Book",
	CategoryVideo:   "Video",
	CategoryArticle: "Article",
	CategoryCourse:  "Course",
	CategoryGeneral: "General",
}

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	_, ok := categoryLabels[c]
	return c, ok
}

// Label returns the display label, or the raw value for unknown categories.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Status is the reading progress of a note. Display-only.
type Status string

const (
	StatusCurrentlyReading Status = "currently_reading"
	StatusFinished         Status = "finished"
	StatusWillRepeat       Status = "will_repeat"
	StatusRepeated         Status = "repeated"
)

var statusLabels = map[Status]string{
	StatusCurrentlyReading: "Currently Reading",
	StatusFinished:         "Finished",
	StatusWillRepeat:       "Will Repeat",
	StatusRepeated:         "Repeated",
}

// Label returns the display label, empty for unknown statuses.
func (s Status) Label() string {
	return statusLabels[s]
}

// Note is the read-only projection of a backend note.
type Note struct {
	ID          string   `json:"_id"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link,omitempty"`
	Content     string   `json:"content"` // HTML fragment from the rich-text editor
	Cover       string   `json:"cover,omitempty"`
	CoverColor  string   `json:"coverColor,omitempty"` // Only meaningful for CategoryGeneral
	Status      Status   `json:"status,omitempty"`
	IsPublic    bool     `json:"isPublic"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	User        Owner    `json:"user"`
}
