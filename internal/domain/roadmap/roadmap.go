package roadmap

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Task is the shape shared by per-phase hands-on projects and the capstone.
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type Resource struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Type      string `json:"type"` // documentation | video | website
	Completed bool   `json:"completed"`
}

type Topic struct {
	TopicName string  `json:"topicName"`
	Completed bool    `json:"completed"`
	TimeSpent float64 `json:"timeSpent"` // accumulated minutes

	// DueDate keeps the YYYY-MM-DD wire format the scheduling model emits.
	DueDate     string     `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Phase position inside Phases is addressing: dueDate and timeSpent are bound
// to (phaseIndex, topicIndex), so phases and topics are never reordered.
type Phase struct {
	PhaseName      string     `json:"phaseName"`
	EstimatedTime  string     `json:"estimatedTime"`
	Topics         []Topic    `json:"topics"`
	Resources      []Resource `json:"resources"`
	HandsOnProject *Task      `json:"handsOnProject,omitempty"`
}

// Roadmap is the root aggregate: one owner, one skill, a JSON phase document.
// Every mutation is a full read-modify-write of the row; the document column
// gives per-roadmap write atomicity and last-write-wins across sessions.
type Roadmap struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	Skill       string    `gorm:"not null" json:"skill"`
	Description string    `json:"description"`

	Phases          datatypes.JSONSlice[Phase] `gorm:"type:jsonb" json:"phases"`
	CapstoneProject datatypes.JSONType[*Task]  `gorm:"type:jsonb" json:"capstoneProject"`

	IsCompleted bool `gorm:"not null;default:false" json:"isCompleted"`

	CreatedAt time.Time      `gorm:"not null;default:now();index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Roadmap) TableName() string { return "roadmap" }

// Capstone unwraps the stored capstone project; nil when the roadmap has none.
func (r *Roadmap) Capstone() *Task {
	return r.CapstoneProject.Data()
}

func (r *Roadmap) SetCapstone(t *Task) {
	r.CapstoneProject = datatypes.NewJSONType(t)
}
