// Package access centralizes authentication-session resolution and
// role-based authorization. Every view and operation goes through the
// same two components instead of re-implementing role checks per page:
//
//   - Resolver maps an access token to an Actor (user id, email, role)
//     and decides what happens when a view expects a different role
//     (redirect to the actual role's dashboard) or when no session
//     exists (redirect to authentication).
//   - Policy is the single role -> capability table, backed by a casbin
//     enforcer built in code. Command and query handlers consult it
//     before touching state, so a producer attempting an administrator
//     action observes a rejection, never a silent no-op.
package access
