package models

// RawFragment is one piece of extracted text from a document page, in layout
// order. FontSize is 0 when the extractor has no font information; consumers
// treat that as the 12pt default.
type RawFragment struct {
	Text     string
	Page     int
	FontSize float64
}

// Section is a titled, contiguous span of body text produced by
// segmentation. Body is non-empty after trimming.
type Section struct {
	Title string
	Body  string
	Page  int
}

// RankedSection is a Section annotated with its document label and relevance
// score. Importance is a score, not a dense rank; higher is more relevant.
type RankedSection struct {
	Document     string  `json:"document"`
	SectionTitle string  `json:"section_title"`
	Page         int     `json:"page"`
	Importance   float64 `json:"importance_rank"`
	RawText      string  `json:"-"`
}

// RunMetadata describes one collection processing run.
type RunMetadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one selected section in the final digest.
type ExtractedSection struct {
	Document       string  `json:"document"`
	SectionTitle   string  `json:"section_title"`
	ImportanceRank float64 `json:"importance_rank"`
	PageNumber     int     `json:"page_number"`
}

// SubsectionAnalysis carries the refined text for one selected section.
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// CollectionResult is the persisted output of one collection run.
type CollectionResult struct {
	Metadata                RunMetadata          `json:"metadata"`
	ExtractedSections       []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis      []SubsectionAnalysis `json:"subsection_analysis"`
	TotalSectionsConsidered int                  `json:"total_sections_considered"`
	SelectedSectionsCount   int                  `json:"selected_sections_count"`
}
