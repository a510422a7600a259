package storage

// ApiStore defines the complete set of operations needed by the HTTP
// API. Components should depend on the granular interfaces
// (CheckReader, DepositManager, etc.) where they can.
type ApiStore interface {
	CheckStore
	DepositManager
	SeriesManager
	CheckBookReader
	ContactReader
	StatsReader
}

// Storage defines the root interface for the entire data layer.
type Storage interface {
	ApiStore
}
