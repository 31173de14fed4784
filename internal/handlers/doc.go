// Package handlers implements the HTTP API layer for hestia-task.
//
// Handlers decode requests, delegate to services.TaskService and map errors
// to HTTP status codes. Errors are reported as FHIR OperationOutcome
// documents; searches return a searchset Bundle.
//
// # API Endpoints
//
//	┌────────┬─────────────┬───────────────────────────────────────────────┐
//	│ Method │ Endpoint    │ Description                                   │
//	├────────┼─────────────┼───────────────────────────────────────────────┤
//	│ POST   │ /Task       │ Create a task, assigning an id if missing     │
//	│ GET    │ /Task       │ Search tasks, returns a Bundle                │
//	│ GET    │ /Task/{id}  │ Read a task                                   │
//	│ PUT    │ /Task/{id}  │ Create or update a task under id              │
//	│ DELETE │ /Task/{id}  │ Always 405, tasks are never deleted           │
//	└────────┴─────────────┴───────────────────────────────────────────────┘
//
// # Search Parameters
//
//	status, location, code, part-of, based-on, owner, focus, limit, order
//
// Blank parameters are ignored. order is asc or desc and only applies with
// a limit.
//
// # Error Mapping
//
//	┌──────────────────────────────┬────────┐
//	│ Error                        │ Status │
//	├──────────────────────────────┼────────┤
//	│ MalformedInputError          │ 400    │
//	│ ResourceNotFoundError        │ 404    │
//	│ UnsupportedOperationError    │ 405    │
//	│ Connection/Infrastructure    │ 503    │
//	│ anything else                │ 500    │
//	└──────────────────────────────┴────────┘
package handlers
