package dataset

// FileReport accounts for one source file's contribution to the dataset.
type FileReport struct {
	File     string `json:"file"`
	Semester string `json:"semester"`
	Rows     int    `json:"rows"`
	Accepted int    `json:"accepted"`
}

// LoadReport aggregates the load phase: accepted record count plus rejection
// counts by reason, overall and per file.
type LoadReport struct {
	Files    []FileReport         `json:"files"`
	Accepted int                  `json:"accepted"`
	Rejected map[RejectReason]int `json:"rejectedByReason"`
}

func (r *LoadReport) TotalRejected() int {
	total := 0
	for _, n := range r.Rejected {
		total += n
	}
	return total
}
