//go:build !protogen

package triage

// NewProvider returns nil when built without generated triage protos;
// emergency bookings then record the assessment id without a level.
func NewProvider(_ string) (Provider, error) {
	return nil, nil
}
