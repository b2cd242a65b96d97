package loader

// Backend kinds selectable with DATA_SOURCE
const (
	KindPostgres = "postgres"
	KindSnapshot = "snapshot"
)

// Error Messages
const (
	ErrMsgUnknownKind          = "unknown data source"
	ErrMsgMissingPool          = "postgres data source needs a connection pool"
	ErrMsgMissingSnapshotPath  = "snapshot data source needs a path"
	ErrMsgFailedToReadSnapshot = "failed to read snapshot"
	ErrMsgFailedToParse        = "failed to parse snapshot"
	ErrMsgInvalidSnapshot      = "invalid snapshot"
)

// Log Messages
const (
	LogMsgSnapshotLoaded       = "Snapshot loaded"
	LogMsgDanglingMonsterLinks = "Dropped links to unknown monsters"
	LogMsgDuplicateDrops       = "Collapsed duplicate drops"
	LogMsgBackendSelected      = "Data source selected"
)
