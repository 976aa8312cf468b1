package domain

// LandmarkSource tags where a landmark list came from.
// SourceOpenAI marks any generated list, whichever provider served it.
type LandmarkSource string

const (
	SourceLocalDatabase LandmarkSource = "local-database"
	SourceOpenAI        LandmarkSource = "openai"
)

// LandmarkResult is the landmark lookup response
type LandmarkResult struct {
	Location  string         `json:"location"`
	Landmarks []string       `json:"landmarks"`
	Source    LandmarkSource `json:"source"`
}

// Caption is a short travel caption for a destination
type Caption struct {
	Caption string `json:"caption"`
}

// CaptionRequest is the body of a caption request
type CaptionRequest struct {
	Location string `json:"location"`
}
