// Package parcel provides the Parcel aggregate and its status enumerations.
//
// The package includes:
//   - Parcel: the aggregate root managing identity, settlement, assignment,
//     and delivery lifecycle
//   - DeliveryStatus: the forward-only fulfillment state machine
//   - PaymentStatus: the binary settlement flag
//
// Key business rules:
//   - Parcels are created pending and unpaid; only the sender email is required
//   - Delivery status transitions are restricted to the explicit table:
//     pending -> rider_assigned -> in_transit -> delivered | service_center_delivered
//   - Going in transit stamps the pickup time; delivery stamps the delivery time
//   - Rider assignment fields are set together, while the parcel is pending
package parcel
