package common

// AccessTokenHeaderName is the gRPC metadata key carrying the caller's
// access token.
const AccessTokenHeaderName = "access_token"

// MaxActiveKeys is the per-owner ceiling on simultaneously active keys.
const MaxActiveKeys = 3
