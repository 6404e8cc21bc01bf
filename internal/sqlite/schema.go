package sqlite

// Schema DDL. Tables are created on Attach if missing; the database file
// persists between runs.
const (
	createClients = `CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    business_name TEXT,
    location TEXT,
    phone TEXT,
    anydesk TEXT,
    source_file TEXT,
    extra_data TEXT,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

	createContactMessages = `CREATE TABLE IF NOT EXISTS contact_messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    phone TEXT,
    message TEXT,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

	createSourceFiles = `CREATE TABLE IF NOT EXISTS source_files (
    name TEXT PRIMARY KEY,
    stored_name TEXT NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL DEFAULT (datetime('now'))
);`
)

// Index DDL for the common lookups.
const (
	idxClientsLocation = `CREATE INDEX IF NOT EXISTS idx_clients_location ON clients(location);`
	idxClientsName     = `CREATE INDEX IF NOT EXISTS idx_clients_name ON clients(business_name);`
	idxClientsSource   = `CREATE INDEX IF NOT EXISTS idx_clients_source ON clients(source_file);`
)

// schemaDDL lists all CREATE statements in execution order.
var schemaDDL = []string{
	createClients,
	createContactMessages,
	createSourceFiles,
	idxClientsLocation,
	idxClientsName,
	idxClientsSource,
}
