package models

// TimestampLayout is the text format of mensaje.fecha.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Message is a row of the mensaje table.
type Message struct {
	ID         int64  `db:"id" json:"id"`
	SenderID   int64  `db:"emisor_id" json:"emisor_id"`
	ReceiverID int64  `db:"receptor_id" json:"receptor_id"`
	Content    string `db:"contenido" json:"contenido"`
	SentAt     string `db:"fecha" json:"fecha"`
}
