package dashboard

// LocationAttendanceSummary is the per-location daily rollup shown on the
// dashboard: full-time and part-time presence combined, with display name
// lists (part-time names annotated with their shift).
type LocationAttendanceSummary struct {
	Location          string   `json:"location"`
	Date              string   `json:"date"`
	TotalStaff        int      `json:"total_staff"`
	Present           int      `json:"present"`
	HalfDay           int      `json:"half_day"`
	Absent            int      `json:"absent"`
	TotalPresentValue float64  `json:"total_present_value"`
	PresentNames      []string `json:"present_names"`
	HalfDayNames      []string `json:"half_day_names"`
	AbsentNames       []string `json:"absent_names"`
}
