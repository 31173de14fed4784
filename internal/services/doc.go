// Package services implements the business logic layer for hestia-task.
//
// Services sit between the front ends (HTTP handlers, CLI commands) and the
// store. They decode and encode documents, assign ids and turn store errors
// into write outcomes.
//
// # Service Dependency Graph
//
//	Handlers / CLI
//	    │
//	    ▼
//	Services Layer
//	    ├── TaskService ───► TaskRepository (store.TaskStore), TaskSearcher (store.SearchEngine)
//	    └── ImportService ─► TaskService, Scheduler
//
// # TaskService
//
//	┌───────────┬──────────────────────────────────────────────────────────┐
//	│ Operation │ Behavior                                                 │
//	├───────────┼──────────────────────────────────────────────────────────┤
//	│ Create    │ assigns "Task-<uuid>" when the id is empty, then Write   │
//	│ Update    │ requires an id; the body id must be empty or equal       │
//	│ Write     │ Index + Put, returns a StoreOutcome                      │
//	│ Get       │ reads the row and decodes DATA:BODY                      │
//	│ Delete    │ always UnsupportedOperationError                         │
//	│ Search    │ SearchEngine.DoSearch                                    │
//	└───────────┴──────────────────────────────────────────────────────────┘
//
// # Write Outcomes
//
//	┌──────────────────────────────────────────────┬──────────┐
//	│ Error                                        │ Outcome  │
//	├──────────────────────────────────────────────┼──────────┤
//	│ nil                                          │ Good     │
//	│ MalformedInput, NotFound, UnsupportedOp      │ Bad      │
//	│ Connection, Infrastructure, anything else    │ Failed   │
//	└──────────────────────────────────────────────┴──────────┘
//
// Bad is not worth retrying. Failed may succeed on retry.
//
// # ImportService
//
// Import accepts a Bundle, a JSON array of tasks or a single task. Every task
// is created through a Scheduler sized by Import.NumWorkers; the returned
// ImportSummary counts outcomes and lists each failure by its position in
// the input.
package services
