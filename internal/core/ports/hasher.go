package ports

// Hasher defines the interface for fingerprinting content.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Fingerprint returns an opaque digest of data. Equal input gives equal output.
	Fingerprint(data []byte) string
}
