package models

// SkillGroup is one skill category with its skill names, in display order.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// ProfileSnapshot is the candidate data assembled fresh for one analysis
// request. It is read-only for the duration of the request and never stored.
type ProfileSnapshot struct {
	Experiences []Experience
	Skills      []SkillGroup
	Projects    []Project
}

// CvExperience mirrors Experience but keeps dates as strings, since the
// values come back from the model and are not validated or re-parsed.
type CvExperience struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location,omitempty"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate,omitempty"`
	Highlights []string `json:"highlights"`
}

type CvProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	GitHubRepo  string `json:"gitHubRepo,omitempty"`
}

// TailoredCv is the model-personalized CV content. The contact fields are
// always overwritten with the candidate's real details after parsing; the
// prompt only ever shows the model privacy placeholders.
type TailoredCv struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	LinkedIn        string         `json:"linkedIn"`
	GitHub          string         `json:"gitHub"`
	PersonalWebsite string         `json:"personalWebsite"`
	Summary         string         `json:"summary"`
	Experience      []CvExperience `json:"experience"`
	Projects        []CvProject    `json:"projects"`
	Skills          []SkillGroup   `json:"skills"`
}

type MatchEvaluation struct {
	MatchPercentage int    `json:"matchPercentage"`
	Explanation     string `json:"explanation"` // plain text, \n for paragraph breaks
}

type JobInformation struct {
	JobTitle     string `json:"jobTitle"`
	Company      string `json:"company"`
	Salary       string `json:"salary,omitempty"`
	Location     string `json:"location,omitempty"`
	Requirements string `json:"requirements,omitempty"`
}

// JobMatchAnalysis is the structured payload extracted from the model's
// reply. Field values are provider-controlled and deliberately unvalidated.
type JobMatchAnalysis struct {
	JobInformation  JobInformation  `json:"jobInformation"`
	MatchEvaluation MatchEvaluation `json:"matchEvaluation"`
	TailoredCv      TailoredCv      `json:"tailoredCv"`
}

type FileAttachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

type JobMatchRequest struct {
	JobDescription string `json:"job_description"`
}

type JobMatchResponse struct {
	MatchEvaluation MatchEvaluation `json:"match_evaluation"`
	TailoredCv      FileAttachment  `json:"tailored_cv"`
}
