// Package common contains shared constants and sentinel errors used across
// talentbase components.
package common

// UnknownName is the display fallback used when a talent or category
// reference cannot be resolved. Deletes do not cascade, so readers must
// tolerate dangling IDs.
const UnknownName = "Unknown"

// AccessTokenHeaderName is the HTTP header used to carry the access token on
// outbound sync requests.
const AccessTokenHeaderName = "Authorization"
