// Package account provides the application-level identity records attached
// to authenticated users.
//
// The package includes:
//   - Profile: the aggregate root holding id, role, display name and email
//   - Role: the access role, producer or admin
//
// Key business rules:
//   - A profile's id is shared with the identity provider's session subject
//   - Role is assigned at creation; self-registration always yields
//     producer, the bootstrap endpoint yields admin
//   - The display name is the only field mutable after creation
//
// Roles persist under the labels "producer" and "admin".
package account
