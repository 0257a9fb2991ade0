package summarizer

// Minutes is the four-part summary of one transcript.
type Minutes struct {
	AbstractSummary string `json:"abstract_summary"`
	KeyPoints       string `json:"key_points"`
	ActionItems     string `json:"action_items"`
	Sentiment       string `json:"sentiment"`
}

// Facet is one independent extraction over the transcript.
type Facet struct {
	Name        string
	Title       string
	Instruction string
	field       func(m *Minutes) *string
}

// Get returns the field of m that f fills.
func (f Facet) Get(m *Minutes) string {
	return *f.field(m)
}

func (f Facet) set(m *Minutes, text string) {
	*f.field(m) = text
}

const (
	FacetAbstract    = "abstract_summary"
	FacetKeyPoints   = "key_points"
	FacetActionItems = "action_items"
	FacetSentiment   = "sentiment"
)

// Facets lists the extractions that make up Minutes, in report order.
var Facets = []Facet{
	{
		Name:        FacetAbstract,
		Title:       "Abstract",
		Instruction: abstractInstruction,
		field:       func(m *Minutes) *string { return &m.AbstractSummary },
	},
	{
		Name:        FacetKeyPoints,
		Title:       "Key Points",
		Instruction: keyPointsInstruction,
		field:       func(m *Minutes) *string { return &m.KeyPoints },
	},
	{
		Name:        FacetActionItems,
		Title:       "Action Items",
		Instruction: actionItemsInstruction,
		field:       func(m *Minutes) *string { return &m.ActionItems },
	},
	{
		Name:        FacetSentiment,
		Title:       "Sentiment",
		Instruction: sentimentInstruction,
		field:       func(m *Minutes) *string { return &m.Sentiment },
	},
}
