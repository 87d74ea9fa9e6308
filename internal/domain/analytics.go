package domain

// Report describes a named read-only analysis. Param names the single
// optional query parameter ("" when the report takes none).
type Report struct {
	Name        string
	Description string
	Param       string
}

// ReportResult carries generic tabular output: column names plus rows of
// driver-decoded values, ready for JSON encoding or charting.
type ReportResult struct {
	Columns []string
	Rows    [][]any
}
