package sqlite

// Schema DDL. Every statement is idempotent; Open applies the full set on
// each call so an existing database is reused as-is.
const (
	createNamedObjects = `CREATE TABLE IF NOT EXISTS named_objects (
    id     INTEGER PRIMARY KEY,
    name   TEXT NOT NULL,
    path   TEXT UNIQUE,
    parent TEXT
);`

	createShareGroups = `CREATE TABLE IF NOT EXISTS share_groups (
    share_id TEXT NOT NULL,
    obj_id   INTEGER NOT NULL,
    PRIMARY KEY (share_id, obj_id)
);`
)

// Index DDL for lookups not covered by the primary keys. The UNIQUE
// constraint on named_objects.path already carries its own index.
const (
	idxShareGroupsObj = `CREATE INDEX IF NOT EXISTS idx_share_groups_obj ON share_groups(obj_id);`
)

// insertRootRow creates the singleton root row on first open. The root
// stores a NULL path, and SQLite treats NULLs as distinct under UNIQUE, so
// presence is checked explicitly rather than with INSERT OR IGNORE.
const insertRootRow = `INSERT INTO named_objects (name, path, parent)
SELECT '', NULL, NULL
WHERE NOT EXISTS (SELECT 1 FROM named_objects WHERE path IS NULL);`

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createNamedObjects,
	createShareGroups,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxShareGroupsObj,
}
