package models

// Roles the web page offers. The column is free text and never checked.
const (
	RoleStudent = "alumno"
	RoleTeacher = "profesor"
	RoleParent  = "apoderado"
)

// User is a row of the usuario table. Password is stored as given.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"nombre" json:"nombre"`
	Role     string `db:"rol" json:"rol"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}
