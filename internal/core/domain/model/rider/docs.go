// Package rider provides the Rider aggregate and its status enumerations for
// the rider registry.
//
// The package includes:
//   - Rider: the aggregate root managing application identity and workload
//   - Status: the approval workflow (pending -> active / rejected)
//   - WorkStatus: the delivery workload flag (idle / in_delivery)
//
// Activation of an application forces the matching user record into the
// rider role; that cross-aggregate side effect is coordinated by the
// application layer inside a single transaction.
package rider
