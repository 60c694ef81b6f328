package models

// RawComment is one top-level comment pulled from the megathread.
// Ephemeral: consumed once by the record builder, never stored as-is.
type RawComment struct {
	Author string `json:"author"`
	Score  int    `json:"score"`
	Body   string `json:"body"`
}

// Candidate is the structured profile extracted from one comment.
// Immutable after insert; ID is assigned by the store.
type Candidate struct {
	ID              int64    `json:"id"`
	Author          string   `json:"author"`
	Score           int      `json:"score"`
	Location        string   `json:"location"`
	Relocate        string   `json:"relocate"`
	JobType         string   `json:"job_type"`
	NoticePeriod    string   `json:"notice_period"`
	ExperienceYears float64  `json:"experience_years"`
	CVLink          string   `json:"cv_link"`
	CVIsLink        bool     `json:"cv_is_link"`
	Blurb           string   `json:"blurb"`
	TechStack       []string `json:"tech_stack"` //sorted, duplicate-free, vocabulary tokens only
}

// Query holds one finalized search from the conversation flow.
// Nil/empty slices mean the criterion was skipped.
type Query struct {
	Techs     []string `json:"techs"`
	Locations []string `json:"locations"`
	MinYOE    float64  `json:"min_yoe"`
}

// UnknownAuthor is the sentinel stored when the source gives no author.
const UnknownAuthor = "[unknown]"
