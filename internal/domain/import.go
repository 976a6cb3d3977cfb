package domain

// ImportCount tallies one collection of a legacy import.
type ImportCount struct {
	Migrated int `json:"migrated"`
	Failed   int `json:"failed"`
}

// ImportReport summarises a legacy import run.
// A failed record is logged and counted; it never aborts the run.
type ImportReport struct {
	Users        ImportCount `json:"users"`
	Destinations ImportCount `json:"destinations"`
	Itineraries  ImportCount `json:"itineraries"`
}
