package models

// DateLayout is the text format of asistencia.fecha.
const DateLayout = "2006-01-02"

// Attendance is a row of the asistencia table. Duplicate (student, date)
// pairs are allowed.
type Attendance struct {
	ID        int64  `db:"id" json:"id"`
	StudentID int64  `db:"estudiante_id" json:"estudiante_id"`
	Date      string `db:"fecha" json:"fecha"`
	Present   bool   `db:"presente" json:"presente"`
}
