package report

// Finding is the normalized representation of one failed check from any
// supported scanner report. Two findings are the same iff all three
// fields are equal; the struct is comparable so it can key a map.
type Finding struct {
	Title     string `json:"title"`
	Severity  string `json:"severity"`
	AccountID string `json:"account_id"`
}
