package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/liceo-connect/liceo-api/pkg/config"
)

const schemaTemplate = `
CREATE TABLE IF NOT EXISTS usuario (
	id {{pk}},
	nombre VARCHAR(80) NOT NULL,
	rol VARCHAR(20) NOT NULL,
	email VARCHAR(120) NOT NULL UNIQUE,
	password VARCHAR(80) NOT NULL
);
CREATE TABLE IF NOT EXISTS asistencia (
	id {{pk}},
	estudiante_id INTEGER,
	fecha VARCHAR(20),
	presente BOOLEAN
);
CREATE INDEX IF NOT EXISTS idx_asistencia_estudiante ON asistencia (estudiante_id);
CREATE TABLE IF NOT EXISTS calificacion (
	id {{pk}},
	estudiante_id INTEGER,
	materia VARCHAR(50),
	nota DOUBLE PRECISION
);
CREATE INDEX IF NOT EXISTS idx_calificacion_estudiante ON calificacion (estudiante_id);
CREATE TABLE IF NOT EXISTS mensaje (
	id {{pk}},
	emisor_id INTEGER,
	receptor_id INTEGER,
	contenido TEXT,
	fecha VARCHAR(32)
);
CREATE INDEX IF NOT EXISTS idx_mensaje_emisor ON mensaje (emisor_id);
CREATE INDEX IF NOT EXISTS idx_mensaje_receptor ON mensaje (receptor_id);
`

var primaryKeys = map[string]string{
	config.DriverPostgres: "SERIAL PRIMARY KEY",
	config.DriverSQLite:   "INTEGER PRIMARY KEY AUTOINCREMENT",
}

// Statements returns the idempotent DDL for driver, one statement per entry.
func Statements(driver string) ([]string, error) {
	pk, ok := primaryKeys[driver]
	if !ok {
		return nil, fmt.Errorf("no schema for driver %q", driver)
	}
	ddl := strings.ReplaceAll(schemaTemplate, "{{pk}}", pk)

	var stmts []string
	for _, stmt := range strings.Split(ddl, ";") {
		if trimmed := strings.TrimSpace(stmt); trimmed != "" {
			stmts = append(stmts, trimmed)
		}
	}
	return stmts, nil
}

// Migrate creates any missing tables and indexes. It is safe to run on every
// start and must complete before the server accepts traffic.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts, err := Statements(db.DriverName())
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
