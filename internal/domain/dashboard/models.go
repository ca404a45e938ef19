package dashboard

type Stats struct {
	TotalEmployees         int `json:"total_employees"`
	PresentToday           int `json:"present_today"`
	AbsentToday            int `json:"absent_today"`
	TotalAttendanceRecords int `json:"total_attendance_records"`
}
