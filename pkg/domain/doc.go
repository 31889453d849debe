// Package domain contains the core entities of the study tracker: subjects and
// their topics, study sessions with their focus checks, tasks, streaks and the
// aggregate statistics computed over them. The types are free of storage and
// transport concerns so they can be shared across packages.
package domain
