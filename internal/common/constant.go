package common

// AnonymousUser is the authorship label used for reports submitted
// without an active session.
const AnonymousUser = "Anonymous"

// ProfileKey is the metadata key under which the serialized session
// profile is stored locally.
const ProfileKey = "profile"

// RequestIDHeaderName carries a per-request correlation id on outbound
// API calls.
const RequestIDHeaderName = "X-Request-Id"
