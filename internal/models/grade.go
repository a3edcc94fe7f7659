package models

// Grade is a row of the calificacion table. Score has no range constraint.
type Grade struct {
	ID        int64   `db:"id" json:"id"`
	StudentID int64   `db:"estudiante_id" json:"estudiante_id"`
	Subject   string  `db:"materia" json:"materia"`
	Score     float64 `db:"nota" json:"nota"`
}
