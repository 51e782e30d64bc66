package report

// Dialect identifies which scanner report layout a file uses.
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectAWS
	DialectAzure
)

func (d Dialect) String() string {
	switch d {
	case DialectAWS:
		return "AWS"
	case DialectAzure:
		return "Azure"
	default:
		return "Unknown"
	}
}

// ColumnBindings maps a dialect's column names onto the canonical
// finding fields. Resolved once per file from the header row.
type ColumnBindings struct {
	Title    string
	Severity string
	Account  string
	Region   string
}

var awsBindings = ColumnBindings{
	Title:    "CHECK_TITLE",
	Severity: "SEVERITY",
	Account:  "ACCOUNT_UID",
	Region:   "REGION",
}

// Azure reports may lack a SEVERITY column entirely; lookups fall back
// to "N/A" at extraction time.
var azureBindings = ColumnBindings{
	Title:    "REQUIREMENTS_DESCRIPTION",
	Severity: "SEVERITY",
	Account:  "SUBSCRIPTIONID",
	Region:   "LOCATION",
}

// DetectDialect inspects a header row and picks the dialect by its
// discriminator column. ACCOUNT_UID wins over SUBSCRIPTIONID if a file
// somehow carried both.
func DetectDialect(header []string) (Dialect, ColumnBindings) {
	cols := make(map[string]bool, len(header))
	for _, h := range header {
		cols[h] = true
	}

	if cols["ACCOUNT_UID"] {
		return DialectAWS, awsBindings
	}
	if cols["SUBSCRIPTIONID"] {
		return DialectAzure, azureBindings
	}
	return DialectUnknown, ColumnBindings{}
}
