package dto

// Request fields are pointers so that 0, false and "" count as present while
// a missing key or null does not.

// MarkAttendanceRequest is the POST /asistencia payload. Present defaults to
// true when omitted.
type MarkAttendanceRequest struct {
	StudentID *int64 `json:"estudiante_id" validate:"required"`
	Present   *bool  `json:"presente"`
}

// AttendanceItem is one entry of GET /asistencia/:id.
type AttendanceItem struct {
	Date    string `json:"fecha"`
	Present bool   `json:"presente"`
}

// AddGradeRequest is the POST /calificaciones payload.
type AddGradeRequest struct {
	StudentID *int64   `json:"estudiante_id" validate:"required"`
	Subject   *string  `json:"materia" validate:"required"`
	Score     *float64 `json:"nota" validate:"required"`
}

// GradeItem is one entry of GET /calificaciones/:id.
type GradeItem struct {
	Subject string  `json:"materia"`
	Score   float64 `json:"nota"`
}

// SendMessageRequest is the POST /mensajes payload.
type SendMessageRequest struct {
	SenderID   *int64  `json:"emisor_id" validate:"required"`
	ReceiverID *int64  `json:"receptor_id" validate:"required"`
	Content    *string `json:"contenido" validate:"required"`
}

// MessageItem is one entry of GET /mensajes/:id.
type MessageItem struct {
	Sender   int64  `json:"emisor"`
	Receiver int64  `json:"receptor"`
	Content  string `json:"contenido"`
	Date     string `json:"fecha"`
}

// Export formats for grade sheets.
const (
	ExportCSV = "csv"
	ExportPDF = "pdf"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
