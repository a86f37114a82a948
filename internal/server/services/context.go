package services

import "context"

type sourceAddressKey struct{}

// WithSourceAddress attaches the caller's network address to ctx. It is
// recorded on audit events written while serving the request.
func WithSourceAddress(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, sourceAddressKey{}, addr)
}

// SourceAddress returns the address stored by WithSourceAddress, or "".
func SourceAddress(ctx context.Context) string {
	addr, _ := ctx.Value(sourceAddressKey{}).(string)
	return addr
}
