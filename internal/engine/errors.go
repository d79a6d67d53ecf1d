package engine

// Kind classifies a validation record for programmatic handling.
type Kind string

const (
	// KindConflict indicates two selected skills where the earlier one
	// declares a conflict with the later one.
	KindConflict Kind = "conflict"
	// KindMissingRequirement indicates a selected skill whose requirement is unmet.
	KindMissingRequirement Kind = "missing_requirement"
	// KindCategoryExclusive indicates two or more selected skills in an exclusive category.
	KindCategoryExclusive Kind = "category_exclusive"
	// KindMissingRecommendation indicates a recommended skill that is not selected.
	KindMissingRecommendation Kind = "missing_recommendation"
)

// ValidationError records a problem that makes a selection invalid.
type ValidationError struct {
	Kind    Kind     `json:"kind"`
	Skills  []string `json:"skills"`
	Message string   `json:"message"`
}

// Error returns the human-readable message.
func (e ValidationError) Error() string {
	return e.Message
}

// ValidationWarning records a soft problem that does not invalidate a selection.
type ValidationWarning struct {
	Kind    Kind     `json:"kind"`
	Skills  []string `json:"skills"`
	Message string   `json:"message"`
}

// Result is the outcome of validating a whole selection.
type Result struct {
	Valid    bool                `json:"valid"`
	Errors   []ValidationError   `json:"errors"`
	Warnings []ValidationWarning `json:"warnings"`
}
