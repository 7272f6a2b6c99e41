package models

// ApplicantSummary is the projection admins see when browsing resumes or the
// applicants of a job.
type ApplicantSummary struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	ProfileHeadline   string `json:"profile_headline"`
	ResumeFileAddress string `json:"resume_file_address"`
	Skills            string `json:"skills"`
	Education         string `json:"education"`
	Experience        string `json:"experience"`
	Phone             string `json:"phone"`
}

// ResumeSummary is the narrower projection of the resume listing.
type ResumeSummary struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	ResumeFileAddress string `json:"resume_file_address"`
	Skills            string `json:"skills"`
	Education         string `json:"education"`
	Experience        string `json:"experience"`
	Phone             string `json:"phone"`
}

// ApplicantDetail adds the address on top of the summary projection.
type ApplicantDetail struct {
	ApplicantSummary
	Address string `json:"address"`
}
