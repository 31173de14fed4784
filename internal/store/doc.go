// Package store implements the task persistence and search layer of hestia-task.
//
// Tasks live in one wide-column table (pkg/widecol). Each task is one row keyed
// by its id. Searchable attributes are copied into their own columns at write
// time so they can be matched by scan filters; there is no secondary index.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├────────────────────────────────┬────────────────────────────────┤
//	│          TaskStore             │         SearchEngine           │
//	│  CreateTableIfAbsent/Put/Get   │   DoSearch → filters → Scan    │
//	├────────────────────────────────┴────────────────────────────────┤
//	│                      ConnectionManager                          │
//	│          one shared widecol.Connection, built lazily            │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Row Layout
//
//	┌────────┬───────────┬──────────────────────────────────┐
//	│ Family │ Qualifier │ Source                           │
//	├────────┼───────────┼──────────────────────────────────┤
//	│ INFO   │ STATUS    │ status code                      │
//	│ INFO   │ LOC       │ location.reference               │
//	│ INFO   │ CODE      │ code.text                        │
//	│ INFO   │ PART      │ partOf[0].reference              │
//	│ INFO   │ BASED     │ basedOn[0].reference             │
//	│ INFO   │ OWNER     │ owner.reference                  │
//	│ INFO   │ FOCUS     │ focus.reference                  │
//	│ DATA   │ BODY      │ canonical JSON document          │
//	└────────┴───────────┴──────────────────────────────────┘
//
// An INFO column is written only when its source is non-blank. Writes are
// column upserts: a later write that omits an attribute keeps the stored
// value. BODY is written on every write.
//
// # Connection
//
// ConnectionManager.Connection builds the handle on first call. A failed
// attempt is retried once after Store.RetryDelay; the second failure, or an
// invalid configuration, is returned as a ConnectionError. Tests swap the
// dialer with WithDialer.
//
// # Search
//
// SearchEngine.DoSearch builds one exact match filter per non-blank attribute
// and requires all of them to pass:
//
//	engine.DoSearch(ctx, models.TaskSearchParams{
//	    Status:   "requested",
//	    Location: "Location/42",
//	    Limit:    "10",
//	})
//
// Values are matched as literals. A search without attributes, or with a
// limit that is not a positive integer, returns no results and logs why.
// With a limit, rows come in descending key order unless ascending is
// requested; without one they come in ascending order.
package store
