// Package studytracker holds assets shared by the binaries of the study
// tracker, currently the embedded SQL migrations.
package studytracker

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
